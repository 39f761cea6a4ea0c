// seehuhn.de/go/polygonize - convex collision shapes from sprite alpha
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a sprite sheet and the frame to polygonize.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Shape  path.Path // the opaque area of the sheet, nonzero winding rule
	Width  int       // sheet width in pixels
	Height int       // sheet height in pixels

	HFrames int // number of frame columns (zero means 1)
	VFrames int // number of frame rows (zero means 1)
	Col     int // frame column
	Row     int // frame row

	Resolution float64 // sampling stride
	Margin     float64 // outward padding
}

// Frames returns the frame grid of the sheet, with zero counts replaced
// by 1.
func (tc TestCase) Frames() (h, v int) {
	return max(tc.HFrames, 1), max(tc.VFrames, 1)
}

// Image rasterizes the shape into an anti-aliased alpha mask of the
// sheet size.
func (tc TestCase) Image() *image.Alpha {
	return Rasterize(tc.Shape, tc.Width, tc.Height)
}

// Rasterize fills p into a new w×h alpha mask.
func Rasterize(p path.Path, w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(f32(pts[0]))
		case path.CmdLineTo:
			z.LineTo(f32(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := f32(pts[0])
			x2, y2 := f32(pts[1])
			z.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := f32(pts[0])
			x2, y2 := f32(pts[1])
			x3, y3 := f32(pts[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func f32(v vec.Vec2) (float32, float32) {
	return float32(v.X), float32(v.Y)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

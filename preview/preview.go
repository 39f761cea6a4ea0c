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

// Package preview draws a polygonized sprite frame for visual inspection.
//
// A preview shows the opaque pixels of the frame in grey, the outline of
// the frame, and the collision polygon with its vertices marked.  Previews
// can be written as single-page PDF files or as SVG.
package preview

import (
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polygonize"
)

// Scene is the content of one preview.
type Scene struct {
	Image   polygonize.AlphaSampler
	Region  image.Rectangle
	Polygon polygonize.Polygon
}

// run is a horizontal run of opaque pixels.
type run struct {
	x, y, n int
}

// opaqueRuns returns the runs of opaque pixels inside the frame region.
func (s *Scene) opaqueRuns() []run {
	var runs []run
	for y := s.Region.Min.Y; y < s.Region.Max.Y; y++ {
		start := -1
		for x := s.Region.Min.X; x <= s.Region.Max.X; x++ {
			opaque := x < s.Region.Max.X && polygonize.IsOpaque(s.Image.AlphaAt(x, y))
			if opaque && start < 0 {
				start = x
			} else if !opaque && start >= 0 {
				runs = append(runs, run{x: start, y: y, n: x - start})
				start = -1
			}
		}
	}
	return runs
}

// bounds returns the area shown in the preview: the frame region and the
// polygon, with one pixel of padding.
func (s *Scene) bounds() rect.Rect {
	b := rect.Rect{
		LLx: float64(s.Region.Min.X),
		LLy: float64(s.Region.Min.Y),
		URx: float64(s.Region.Max.X),
		URy: float64(s.Region.Max.Y),
	}
	if len(s.Polygon) > 0 {
		pb := s.Polygon.BBox()
		b.LLx = min(b.LLx, pb.LLx)
		b.LLy = min(b.LLy, pb.LLy)
		b.URx = max(b.URx, pb.URx)
		b.URy = max(b.URy, pb.URy)
	}
	b.LLx--
	b.LLy--
	b.URx++
	b.URy++
	return b
}

// scale returns the number of output units per image pixel, chosen so that
// the longer side of the preview is about size units long.
func (s *Scene) scale(size float64) float64 {
	b := s.bounds()
	return max(1, size/max(b.URx-b.LLx, b.URy-b.LLy))
}

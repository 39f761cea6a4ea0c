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

package preview

import (
	"bytes"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgSize is the length of the longer side of an SVG preview, in pixels.
const svgSize = 512

// WriteSVG writes the scene as an SVG document to w.
func WriteSVG(w io.Writer, s *Scene) error {
	b := s.bounds()
	k := math.Floor(s.scale(svgSize))
	px := func(x float64) int { return int(math.Round(k * (x - b.LLx))) }
	py := func(y float64) int { return int(math.Round(k * (y - b.LLy))) }
	n := int(k)

	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Start(px(b.URx), py(b.URy))
	canvas.Rect(0, 0, px(b.URx), py(b.URy), "fill:white")

	canvas.Gid("pixels")
	for _, r := range s.opaqueRuns() {
		canvas.Rect(px(float64(r.x)), py(float64(r.y)), r.n*n, n, "fill:#bfbfbf")
	}
	canvas.Gend()

	canvas.Rect(px(float64(s.Region.Min.X)), py(float64(s.Region.Min.Y)),
		s.Region.Dx()*n, s.Region.Dy()*n, "fill:none;stroke:#808080")

	if len(s.Polygon) > 0 {
		xs := make([]int, len(s.Polygon))
		ys := make([]int, len(s.Polygon))
		for i, v := range s.Polygon {
			xs[i] = px(v.X)
			ys[i] = py(v.Y)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:2;stroke-linejoin:round")

		canvas.Gid("vertices")
		for i := range xs {
			canvas.Circle(xs[i], ys[i], 3, "fill:red")
		}
		canvas.Gend()
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

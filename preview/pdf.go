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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// pdfSize is the length of the longer page side, in PDF points.
const pdfSize = 400

// WritePDF writes the scene as a single-page PDF file.
func WritePDF(fileName string, s *Scene) error {
	b := s.bounds()
	k := s.scale(pdfSize)

	paper := &pdf.Rectangle{
		URx: k * (b.URx - b.LLx),
		URy: k * (b.URy - b.LLy),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, image coordinates start top-left.
	page.Transform(matrix.Matrix{k, 0, 0, -k, -k * b.LLx, k * b.URy})

	if runs := s.opaqueRuns(); len(runs) > 0 {
		page.SetFillColor(color.DeviceGray(0.75))
		for _, r := range runs {
			page.Rectangle(float64(r.x), float64(r.y), float64(r.n), 1)
		}
		page.Fill()
	}

	page.SetLineWidth(1 / k)
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.Rectangle(float64(s.Region.Min.X), float64(s.Region.Min.Y),
		float64(s.Region.Dx()), float64(s.Region.Dy()))
	page.Stroke()

	if len(s.Polygon) > 0 {
		page.SetLineWidth(2 / k)
		page.SetLineJoin(graphics.LineJoinRound)
		page.SetLineCap(graphics.LineCapRound)
		page.SetStrokeColor(color.DeviceGray(0))
		page.MoveTo(s.Polygon[0].X, s.Polygon[0].Y)
		for _, v := range s.Polygon[1:] {
			page.LineTo(v.X, v.Y)
		}
		page.ClosePath()
		page.Stroke()

		d := 3 / k
		page.SetFillColor(color.DeviceGray(0))
		for _, v := range s.Polygon {
			page.Rectangle(v.X-d, v.Y-d, 2*d, 2*d)
		}
		page.Fill()
	}

	return page.Close()
}

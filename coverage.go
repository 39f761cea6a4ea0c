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

package polygonize

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

// Coverage returns the fraction of opaque pixels in region whose centres
// lie inside poly.  A value below 1 means that the sampling stride has
// missed part of the silhouette and a larger Margin may be needed.
// If region contains no opaque pixels, the coverage is 1.
//
// Coverage panics if region is not contained in the image.
func Coverage(img AlphaSampler, region image.Rectangle, poly Polygon) float64 {
	w, h := img.Size()
	checkRegion(region, w, h)

	total, inside := 0, 0
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if !IsOpaque(img.AlphaAt(x, y)) {
				continue
			}
			total++
			if poly.Contains(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				inside++
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(inside) / float64(total)
}

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
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"
)

// Trace scans the alpha channel of img inside region and returns candidate
// boundary points for the silhouette.  The points are in image coordinates
// and come in no particular order; the same point may occur more than once.
//
// Two passes are made.  The vertical pass samples every
// cfg.Resolution+1'th column and walks down each of these columns one pixel
// at a time.  The horizontal pass samples every row and walks along it,
// again in steps of cfg.Resolution+1 pixels.  Whenever a pass enters or
// leaves a run of opaque pixels, a point is emitted, pushed away from the
// run by cfg.Resolution+cfg.Margin.  The horizontal pass pushes entry points
// by 2*cfg.Resolution+cfg.Margin instead.
//
// If a run is still open at the end of a column or row, the closing point
// is placed relative to the full image height or width, not relative to
// the edge of region.
//
// Trace panics if region is not contained in the image.
func Trace(img AlphaSampler, region image.Rectangle, cfg Config) []vec.Vec2 {
	w, h := img.Size()
	checkRegion(region, w, h)

	var points []vec.Vec2
	step := cfg.stride()
	pad := cfg.Resolution + cfg.Margin

	// top to bottom
	for x := region.Min.X; x < region.Max.X; x += step {
		inside := false
		for y := region.Min.Y; y < region.Max.Y; y++ {
			opaque := IsOpaque(img.AlphaAt(x, y))
			if opaque && !inside {
				points = append(points, vec.Vec2{X: float64(x), Y: float64(y) - pad})
			} else if !opaque && inside {
				points = append(points, vec.Vec2{X: float64(x), Y: float64(y) + pad})
			}
			inside = opaque
		}
		if inside {
			points = append(points, vec.Vec2{X: float64(x), Y: float64(h) + pad})
		}
	}

	// left to right
	enterPad := 2*cfg.Resolution + cfg.Margin
	for y := region.Min.Y; y < region.Max.Y; y++ {
		inside := false
		for x := region.Min.X; x < region.Max.X; x += step {
			opaque := IsOpaque(img.AlphaAt(x, y))
			if opaque && !inside {
				points = append(points, vec.Vec2{X: float64(x) - enterPad, Y: float64(y)})
			} else if !opaque && inside {
				points = append(points, vec.Vec2{X: float64(x) + pad, Y: float64(y)})
			}
			inside = opaque
		}
		if inside {
			points = append(points, vec.Vec2{X: float64(w) + pad, Y: float64(y)})
		}
	}

	return points
}

// checkRegion panics if region does not fit into a w×h image.
func checkRegion(region image.Rectangle, w, h int) {
	if !region.In(image.Rect(0, 0, w, h)) {
		panic(fmt.Sprintf("polygonize: region %v outside %dx%d image", region, w, h))
	}
}

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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon, given by its vertices in order.  The last
// vertex connects back to the first one; the first vertex is not repeated
// at the end.
type Polygon []vec.Vec2

// Path returns the polygon outline as a closed path.
// For an empty polygon, the path has no segments.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{p[0]}) {
			return
		}
		for _, v := range p[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{v}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// BBox returns the smallest axis-aligned rectangle containing all vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon) BBox() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Area returns the signed area of the polygon.  Polygons produced by
// ConvexHull have positive area.
func (p Polygon) Area() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsConvex reports whether the polygon is strictly convex: every three
// consecutive vertices (cyclically) make a turn in the same direction, and
// no three consecutive vertices are collinear.
// Polygons with fewer than three vertices are not convex.
func (p Polygon) IsConvex() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	var sign float64
	for i := range n {
		c := cross(p[i], p[(i+1)%n], p[(i+2)%n])
		if c == 0 || c*sign < 0 {
			return false
		}
		sign = c
	}
	return true
}

// Contains reports whether pt lies inside or on the boundary of the
// polygon.  The polygon must be convex with positive orientation, as
// returned by ConvexHull.
func (p Polygon) Contains(pt vec.Vec2) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i, a := range p {
		if cross(a, p[(i+1)%n], pt) < 0 {
			return false
		}
	}
	return true
}

// Transform returns a new polygon with every vertex mapped through m.
// Only orientation-preserving matrices keep the result positively oriented.
func (p Polygon) Transform(m matrix.Matrix) Polygon {
	if p == nil {
		return nil
	}
	res := make(Polygon, len(p))
	for i, v := range p {
		res[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return res
}

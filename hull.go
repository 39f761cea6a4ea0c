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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// ComparePoints defines the order in which ConvexHull visits the input
// points: by decreasing x, and points with equal x by decreasing y.
// The result is negative if a comes before b, positive if b comes before a,
// and zero if the points are equal.
//
// Together with the "pop on cross <= 0" rule of the sweep, this order fixes
// where the hull starts and which way round it goes.  Changing either one
// on its own flips the orientation or lets collinear points through.
func ComparePoints(a, b vec.Vec2) int {
	if c := cmp.Compare(b.X, a.X); c != 0 {
		return c
	}
	return cmp.Compare(b.Y, a.Y)
}

// ConvexHull returns the convex hull of points, using Andrew's monotone
// chain algorithm.  The input slice is not modified.
//
// The hull starts at the point which comes first under ComparePoints
// (largest x, then largest y).  In image coordinates, with the y-axis
// pointing down, consecutive vertices turn clockwise on screen; the
// cross product of every consecutive triple is positive.  Collinear and
// repeated points are dropped.
//
// If points is empty, the result is empty.  If all points coincide, the
// result has one vertex, and if all points are collinear, it has two.
func ConvexHull(points []vec.Vec2) Polygon {
	pts := slices.Clone(points)
	slices.SortFunc(pts, ComparePoints)
	pts = slices.Compact(pts)

	n := len(pts)
	if n < 2 {
		return Polygon(pts)
	}

	hull := make([]vec.Vec2, 0, 2*n)
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	t := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= t && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first one.
	return Polygon(hull[:len(hull)-1])
}

// cross returns the z-component of the cross product of b-a and c-a.
func cross(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Shape:  triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Shape:  rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "full",
		Shape:  rectangle(0, 0, 32, 24),
		Width:  32,
		Height: 24,
	},
	{
		Name:   "disc",
		Shape:  circle(32, 32, 20, false),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring",
		Shape:  join(circle(32, 32, 28, false), circle(32, 32, 18, true)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "islands",
		Shape:  join(rectangle(4, 4, 14, 14), circle(48, 44, 10, false)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty",
		Shape:  join(),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "margin",
		Shape:  triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Margin: 3,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// fivePointStar builds a five-pointed star.  The centre is filled
// under the nonzero winding rule.
func fivePointStar(cx, cy, r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := range pts[1:] {
			if !yield(path.CmdLineTo, pts[i+1:i+2]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// circle approximates a circle using four cubic Bézier curves.
func circle(cx, cy, r float64, clockwise bool) path.Path {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	// quadrants, starting at the top and going clockwise on screen
	segs := [4][3]vec.Vec2{
		{pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)},
		{pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)},
		{pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)},
		{pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)},
	}
	if !clockwise {
		segs = [4][3]vec.Vec2{
			{pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)},
			{pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)},
			{pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)},
			{pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r)},
		}
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx, cy-r)}) {
			return
		}
		for i := range segs {
			if !yield(path.CmdCubeTo, segs[i][:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// join concatenates the subpaths of several paths.
func join(ps ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range ps {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

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

// strip is a 1×4 sprite sheet of 32×32 frames.  The third frame is empty
// and the fourth one is opaque down to its bottom edge.
var strip = join(
	circle(16, 16, 12, false),
	triangle(36, 28, 48, 4, 60, 28),
	rectangle(100, 8, 120, 32),
)

// grid is a 2×2 sprite sheet of 32×32 frames.  The shape in the top-left
// frame touches the bottom and the right edge of its frame.
var grid = join(
	rectangle(8, 8, 32, 32),
	circle(48, 16, 10, false),
	triangle(4, 60, 16, 36, 28, 60),
	circle(48, 48, 14, false),
)

var sheetCases = []TestCase{
	{Name: "strip_disc", Shape: strip, Width: 128, Height: 32, HFrames: 4, Col: 0},
	{Name: "strip_triangle", Shape: strip, Width: 128, Height: 32, HFrames: 4, Col: 1},
	{Name: "strip_empty", Shape: strip, Width: 128, Height: 32, HFrames: 4, Col: 2},
	{Name: "strip_bottom", Shape: strip, Width: 128, Height: 32, HFrames: 4, Col: 3},
	{Name: "grid_edges", Shape: grid, Width: 64, Height: 64, HFrames: 2, VFrames: 2, Col: 0, Row: 0},
	{Name: "grid_disc", Shape: grid, Width: 64, Height: 64, HFrames: 2, VFrames: 2, Col: 1, Row: 0},
	{Name: "grid_triangle", Shape: grid, Width: 64, Height: 64, HFrames: 2, VFrames: 2, Col: 0, Row: 1},
	{Name: "grid_disc_margin", Shape: grid, Width: 64, Height: 64, HFrames: 2, VFrames: 2, Col: 1, Row: 1, Margin: 2},
}

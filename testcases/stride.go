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

var blob = join(
	circle(40, 36, 24, false),
	triangle(8, 20, 30, 8, 30, 40),
)

var strideCases = []TestCase{
	{Name: "res_1", Shape: blob, Width: 80, Height: 72, Resolution: 1},
	{Name: "res_2", Shape: blob, Width: 80, Height: 72, Resolution: 2},
	{Name: "res_4", Shape: blob, Width: 80, Height: 72, Resolution: 4},
	{Name: "res_4_margin_4", Shape: blob, Width: 80, Height: 72, Resolution: 4, Margin: 4},
	{Name: "res_fraction", Shape: blob, Width: 80, Height: 72, Resolution: 1.5, Margin: 0.5},
}

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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestTrace(t *testing.T) {
	type pts = []vec.Vec2

	cases := []struct {
		name   string
		img    *alphaGrid
		region image.Rectangle
		cfg    Config
		want   pts
	}{
		{
			name:   "opaque_square",
			img:    newGrid(4, 4).set(image.Rect(0, 0, 4, 4), 1),
			region: image.Rect(0, 0, 4, 4),
			want: pts{
				// vertical pass
				{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 1, Y: 0}, {X: 1, Y: 4},
				{X: 2, Y: 0}, {X: 2, Y: 4}, {X: 3, Y: 0}, {X: 3, Y: 4},
				// horizontal pass
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 1}, {X: 4, Y: 1},
				{X: 0, Y: 2}, {X: 4, Y: 2}, {X: 0, Y: 3}, {X: 4, Y: 3},
			},
		},
		{
			name:   "single_pixel",
			img:    newGrid(4, 4).set(image.Rect(2, 2, 3, 3), 1),
			region: image.Rect(0, 0, 4, 4),
			want:   pts{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		},
		{
			name:   "single_pixel_padded",
			img:    newGrid(4, 4).set(image.Rect(2, 2, 3, 3), 1),
			region: image.Rect(0, 0, 4, 4),
			cfg:    Config{Resolution: 1, Margin: 0.5},
			// entry points of the horizontal pass move by 2*Resolution+Margin,
			// and the row is still inside the run when sampling ends at x=2
			want: pts{{X: 2, Y: 0.5}, {X: 2, Y: 4.5}, {X: -0.5, Y: 2}, {X: 5.5, Y: 2}},
		},
		{
			name:   "stride",
			img:    newGrid(8, 2).set(image.Rect(0, 0, 8, 2), 1),
			region: image.Rect(0, 0, 8, 2),
			cfg:    Config{Resolution: 2},
			want: pts{
				{X: 0, Y: -2}, {X: 0, Y: 4},
				{X: 3, Y: -2}, {X: 3, Y: 4},
				{X: 6, Y: -2}, {X: 6, Y: 4},
				{X: -4, Y: 0}, {X: 10, Y: 0},
				{X: -4, Y: 1}, {X: 10, Y: 1},
			},
		},
		{
			name:   "two_runs",
			img:    newGrid(1, 6).set(image.Rect(0, 1, 1, 2), 1).set(image.Rect(0, 3, 1, 5), 1),
			region: image.Rect(0, 0, 1, 6),
			want: pts{
				{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 5},
				{X: 0, Y: 1}, {X: 1, Y: 1},
				{X: 0, Y: 3}, {X: 1, Y: 3},
				{X: 0, Y: 4}, {X: 1, Y: 4},
			},
		},
		{
			// runs cut off by the bottom of the frame close at the image height
			name:   "top_frame",
			img:    newGrid(4, 4).set(image.Rect(0, 0, 4, 4), 1),
			region: image.Rect(0, 0, 4, 2),
			want: pts{
				{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 1, Y: 0}, {X: 1, Y: 4},
				{X: 2, Y: 0}, {X: 2, Y: 4}, {X: 3, Y: 0}, {X: 3, Y: 4},
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 1}, {X: 4, Y: 1},
			},
		},
		{
			name:   "right_frame",
			img:    newGrid(4, 2).set(image.Rect(0, 0, 4, 2), 1),
			region: image.Rect(2, 0, 4, 2),
			want: pts{
				{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 3, Y: 0}, {X: 3, Y: 2},
				{X: 2, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 1},
			},
		},
		{
			name:   "left_frame",
			img:    newGrid(4, 2).set(image.Rect(0, 0, 4, 2), 1),
			region: image.Rect(0, 0, 2, 2),
			want: pts{
				{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 2},
				// open runs close at the image width, not the frame edge
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 1}, {X: 4, Y: 1},
			},
		},
		{
			name:   "huge_resolution",
			img:    newGrid(4, 2).set(image.Rect(0, 0, 4, 2), 1),
			region: image.Rect(0, 0, 4, 2),
			cfg:    Config{Resolution: 1e19},
			want: pts{
				{X: 0, Y: -1e19}, {X: 0, Y: 1e19},
				{X: -2e19, Y: 0}, {X: 1e19, Y: 0}, {X: -2e19, Y: 1}, {X: 1e19, Y: 1},
			},
		},
		{
			name:   "threshold",
			img:    newGrid(3, 3).set(image.Rect(0, 0, 3, 3), 0.1).set(image.Rect(1, 1, 2, 2), 0.11),
			region: image.Rect(0, 0, 3, 3),
			want:   pts{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		},
		{
			name:   "transparent",
			img:    newGrid(5, 3),
			region: image.Rect(0, 0, 5, 3),
			cfg:    Config{Resolution: 1, Margin: 2},
			want:   nil,
		},
		{
			name:   "empty_region",
			img:    newGrid(5, 3).set(image.Rect(0, 0, 5, 3), 1),
			region: image.Rect(2, 1, 2, 3),
			want:   nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Trace(c.img, c.region, c.cfg)
			if !slices.Equal(got, c.want) {
				t.Errorf("got  %v\nwant %v", got, c.want)
			}
		})
	}
}

func TestTraceVisitsColumns(t *testing.T) {
	cases := []struct {
		region     image.Rectangle
		resolution float64
		want       []int
	}{
		{image.Rect(0, 0, 8, 3), 2, []int{0, 3, 6}},
		{image.Rect(3, 0, 8, 3), 1e19, []int{3}},
		{image.Rect(3, 0, 8, 3), math.MaxFloat64, []int{3}},
	}
	for _, c := range cases {
		img := &recordingSampler{AlphaSampler: newGrid(8, 3).set(image.Rect(0, 0, 8, 3), 1)}
		Trace(img, c.region, Config{Resolution: c.resolution})

		var cols []int
		for _, p := range img.queries {
			if !slices.Contains(cols, p.X) {
				cols = append(cols, p.X)
			}
		}
		slices.Sort(cols)
		if !slices.Equal(cols, c.want) {
			t.Errorf("resolution %g: visited columns %v, want %v", c.resolution, cols, c.want)
		}
	}
}

func TestTraceRegionOutside(t *testing.T) {
	img := newGrid(4, 4)
	for _, r := range []image.Rectangle{
		image.Rect(-1, 0, 2, 2),
		image.Rect(0, 0, 5, 4),
		image.Rect(2, 2, 4, 5),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("region %v: no panic", r)
				}
			}()
			Trace(img, r, Config{})
		}()
	}
}

// recordingSampler records all pixel queries.
type recordingSampler struct {
	AlphaSampler
	queries []image.Point
}

func (s *recordingSampler) AlphaAt(x, y int) float64 {
	s.queries = append(s.queries, image.Point{X: x, Y: y})
	return s.AlphaSampler.AlphaAt(x, y)
}

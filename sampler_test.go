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
	"image/color"
	"testing"
)

// alphaGrid is an AlphaSampler backed by a slice of alpha values.
type alphaGrid struct {
	w, h int
	a    []float64
}

func newGrid(w, h int) *alphaGrid {
	return &alphaGrid{w: w, h: h, a: make([]float64, w*h)}
}

// set assigns alpha to all pixels in r.
func (g *alphaGrid) set(r image.Rectangle, alpha float64) *alphaGrid {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.a[y*g.w+x] = alpha
		}
	}
	return g
}

func (g *alphaGrid) Size() (w, h int) { return g.w, g.h }

func (g *alphaGrid) AlphaAt(x, y int) float64 {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic("pixel out of range")
	}
	return g.a[y*g.w+x]
}

func TestIsOpaque(t *testing.T) {
	cases := []struct {
		alpha float64
		want  bool
	}{
		{0, false},
		{0.05, false},
		{0.1, false},
		{0.1000001, true},
		{25.0 / 255, false},
		{26.0 / 255, true},
		{1, true},
	}
	for _, c := range cases {
		if got := IsOpaque(c.alpha); got != c.want {
			t.Errorf("IsOpaque(%g) = %t, want %t", c.alpha, got, c.want)
		}
	}
}

func TestFromImage(t *testing.T) {
	rect := image.Rect(0, 0, 3, 2)

	alpha := image.NewAlpha(rect)
	alpha.SetAlpha(2, 1, color.Alpha{A: 0xFF})

	nrgba := image.NewNRGBA(rect)
	nrgba.SetNRGBA(2, 1, color.NRGBA{R: 0x10, A: 0xFF})

	rgba := image.NewRGBA(rect)
	rgba.SetRGBA(2, 1, color.RGBA{G: 0x20, A: 0xFF})

	gray16 := image.NewGray16(rect) // no alpha channel: fully opaque

	paletted := image.NewPaletted(rect, color.Palette{color.Transparent, color.Black})
	paletted.SetColorIndex(2, 1, 1)

	cases := []struct {
		name string
		img  image.Image
		want func(x, y int) float64
	}{
		{"Alpha", alpha, corner},
		{"NRGBA", nrgba, corner},
		{"RGBA", rgba, corner},
		{"Gray16", gray16, func(int, int) float64 { return 1 }},
		{"Paletted", paletted, corner},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := FromImage(c.img)
			w, h := s.Size()
			if w != 3 || h != 2 {
				t.Fatalf("size %dx%d, want 3x2", w, h)
			}
			for y := range h {
				for x := range w {
					if got, want := s.AlphaAt(x, y), c.want(x, y); got != want {
						t.Errorf("AlphaAt(%d, %d) = %g, want %g", x, y, got, want)
					}
				}
			}
		})
	}
}

// corner is 1 for the bottom-right pixel of a 3×2 image and 0 elsewhere.
func corner(x, y int) float64 {
	if x == 2 && y == 1 {
		return 1
	}
	return 0
}

func TestFromImageOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(-2, 5, 4, 9))
	img.SetNRGBA(-2, 5, color.NRGBA{A: 0x80})
	img.SetNRGBA(3, 8, color.NRGBA{A: 0xFF})

	// the same pixels, seen through a sub-image
	sub := img.SubImage(image.Rect(0, 6, 4, 9))

	s := FromImage(img)
	if got := s.AlphaAt(0, 0); got != 0x80/255.0 {
		t.Errorf("top-left alpha %g", got)
	}
	if got := s.AlphaAt(5, 3); got != 1 {
		t.Errorf("bottom-right alpha %g", got)
	}

	s = FromImage(sub)
	if w, h := s.Size(); w != 4 || h != 3 {
		t.Errorf("sub-image size %dx%d", w, h)
	}
	if got := s.AlphaAt(3, 2); got != 1 {
		t.Errorf("sub-image bottom-right alpha %g", got)
	}
}

func TestSamplerOutOfRange(t *testing.T) {
	s := FromImage(image.NewAlpha(image.Rect(0, 0, 4, 4)))
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("AlphaAt(%d, %d) did not panic", p.X, p.Y)
				}
			}()
			s.AlphaAt(p.X, p.Y)
		}()
	}
}

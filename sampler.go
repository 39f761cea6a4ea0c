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
)

// opacityThreshold is the alpha value above which a pixel counts as opaque.
const opacityThreshold = 0.1

// IsOpaque reports whether a pixel with the given alpha value (in the range
// 0 to 1) belongs to the silhouette.
func IsOpaque(alpha float64) bool {
	return alpha > opacityThreshold
}

// AlphaSampler is a read-only view of the alpha channel of a raster image.
//
// Pixel coordinates run from (0, 0) to (w-1, h-1), where w and h are the
// values returned by Size.  Callers must only query coordinates inside this
// range; implementations may panic otherwise.
type AlphaSampler interface {
	// Size returns the width and height of the image in pixels.
	Size() (w, h int)

	// AlphaAt returns the alpha value of the pixel at (x, y), normalized to
	// the range 0 (transparent) to 1 (opaque).
	AlphaAt(x, y int) float64
}

// FromImage returns an AlphaSampler for img.  The top-left pixel of
// img.Bounds() becomes pixel (0, 0) of the sampler.
//
// The image must not be modified while the sampler is in use.
func FromImage(img image.Image) AlphaSampler {
	switch img := img.(type) {
	case *image.Alpha:
		return alphaImage{img}
	case *image.NRGBA:
		return nrgbaImage{img}
	case *image.RGBA:
		return rgbaImage{img}
	default:
		return genericImage{img}
	}
}

type alphaImage struct{ img *image.Alpha }

func (s alphaImage) Size() (w, h int) {
	b := s.img.Rect
	return b.Dx(), b.Dy()
}

func (s alphaImage) AlphaAt(x, y int) float64 {
	p := checkedPoint(s.img.Rect, x, y)
	return float64(s.img.Pix[s.img.PixOffset(p.X, p.Y)]) / 0xFF
}

type nrgbaImage struct{ img *image.NRGBA }

func (s nrgbaImage) Size() (w, h int) {
	b := s.img.Rect
	return b.Dx(), b.Dy()
}

func (s nrgbaImage) AlphaAt(x, y int) float64 {
	p := checkedPoint(s.img.Rect, x, y)
	return float64(s.img.Pix[s.img.PixOffset(p.X, p.Y)+3]) / 0xFF
}

type rgbaImage struct{ img *image.RGBA }

func (s rgbaImage) Size() (w, h int) {
	b := s.img.Rect
	return b.Dx(), b.Dy()
}

func (s rgbaImage) AlphaAt(x, y int) float64 {
	p := checkedPoint(s.img.Rect, x, y)
	return float64(s.img.Pix[s.img.PixOffset(p.X, p.Y)+3]) / 0xFF
}

// genericImage goes through the color.Color interface and works for
// every image type, at the cost of one allocation per pixel for most of
// them.
type genericImage struct{ img image.Image }

func (s genericImage) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s genericImage) AlphaAt(x, y int) float64 {
	p := checkedPoint(s.img.Bounds(), x, y)
	_, _, _, a := s.img.At(p.X, p.Y).RGBA()
	return float64(a) / 0xFFFF
}

// checkedPoint translates sampler coordinates into image coordinates and
// panics if the result lies outside the image.
func checkedPoint(bounds image.Rectangle, x, y int) image.Point {
	p := image.Point{X: x, Y: y}.Add(bounds.Min)
	if !p.In(bounds) {
		panic(fmt.Sprintf("polygonize: pixel (%d, %d) outside %dx%d image",
			x, y, bounds.Dx(), bounds.Dy()))
	}
	return p
}

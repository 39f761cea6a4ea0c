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
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	// ErrInvalidConfig indicates negative or non-finite scan parameters.
	ErrInvalidConfig = errors.New("invalid scan configuration")

	// ErrInvalidRegion indicates frame parameters which do not describe a
	// non-empty rectangle inside the image.
	ErrInvalidRegion = errors.New("invalid frame region")
)

// Config holds the caller-controlled trade-offs of a silhouette scan.
// The zero value scans every pixel and adds no padding.
type Config struct {
	// Resolution is the sampling stride: the scanner skips int(Resolution)
	// pixels between samples along the stepped axis.  Detected boundary
	// points are pushed outwards by Resolution to make up for the skipped
	// pixels.  Must be non-negative.
	Resolution float64

	// Margin is extra padding, in pixels, added outwards to every detected
	// boundary point.  Must be non-negative.
	Margin float64
}

// Validate checks that both parameters are finite and non-negative.
func (c Config) Validate() error {
	if !(c.Resolution >= 0) || math.IsInf(c.Resolution, 0) {
		return fmt.Errorf("%w: resolution %g", ErrInvalidConfig, c.Resolution)
	}
	if !(c.Margin >= 0) || math.IsInf(c.Margin, 0) {
		return fmt.Errorf("%w: margin %g", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// maxStride bounds the sampling stride.  It is larger than any image side,
// so that a single sample per row and column is taken, and small enough
// that adding it to a pixel coordinate cannot overflow an int.
const maxStride = 1 << 30

// stride returns the number of pixels to advance along the sampled axis.
func (c Config) stride() int {
	if c.Resolution >= maxStride-1 {
		return maxStride
	}
	return int(c.Resolution) + 1
}

// Frame selects one cell of a sprite sheet which is divided into a regular
// grid of HFrames columns and VFrames rows.
type Frame struct {
	HFrames int // number of frame columns, at least 1
	VFrames int // number of frame rows, at least 1
	Col     int // frame column, 0 <= Col < HFrames
	Row     int // frame row, 0 <= Row < VFrames
}

// SingleFrame describes an image which is not split into frames.
var SingleFrame = Frame{HFrames: 1, VFrames: 1}

// Region returns the pixel rectangle of the frame within a w×h image.
// Frame sizes are rounded down, so that pixels beyond the last full
// column or row of frames never belong to any frame.
func (f Frame) Region(w, h int) (image.Rectangle, error) {
	if f.HFrames < 1 || f.VFrames < 1 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d frames",
			ErrInvalidRegion, f.HFrames, f.VFrames)
	}
	if f.Col < 0 || f.Col >= f.HFrames || f.Row < 0 || f.Row >= f.VFrames {
		return image.Rectangle{}, fmt.Errorf("%w: frame (%d, %d) not in %dx%d grid",
			ErrInvalidRegion, f.Col, f.Row, f.HFrames, f.VFrames)
	}

	fw := w / f.HFrames
	fh := h / f.VFrames
	if fw <= 0 || fh <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d image too small for %dx%d frames",
			ErrInvalidRegion, w, h, f.HFrames, f.VFrames)
	}

	x0 := f.Col * fw
	y0 := f.Row * fh
	return image.Rect(x0, y0, x0+fw, y0+fh), nil
}

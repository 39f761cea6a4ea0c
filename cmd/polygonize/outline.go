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


package main

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/gotranspile/gotrace"

	"seehuhn.de/go/polygonize"
)

// outlineMask converts the frame to a black and white mask, with opaque
// pixels black.  The mask origin is the top-left corner of the frame.
func outlineMask(img polygonize.AlphaSampler, region image.Rectangle) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			c := color.Gray{Y: 255}
			if polygonize.IsOpaque(img.AlphaAt(x, y)) {
				c.Y = 0
			}
			mask.SetGray(x-region.Min.X, y-region.Min.Y, c)
		}
	}
	return mask
}

// traceOutline renders the exact (non-convex) outline of the opaque
// pixels in the frame as SVG.  This is useful to judge how much area the
// convex polygon adds around the sprite.
func traceOutline(w io.Writer, img polygonize.AlphaSampler, region image.Rectangle) error {
	mask := outlineMask(img, region)
	bm := gotrace.BitmapFromGray(mask, nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func writeOutline(fileName string, img polygonize.AlphaSampler, region image.Rectangle) error {
	return writeFile(fileName, func(w io.Writer) error {
		return traceOutline(w, img, region)
	})
}

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

// Package polygonize computes convex collision polygons for sprites.
//
// The opaque part of one frame of a sprite sheet is located by scanning
// the alpha channel along columns and rows, and the detected boundary
// points are reduced to their convex hull.  Concave sprites are thus
// over-approximated, and all opaque islands of a frame end up inside a
// single polygon.
//
// All functions are pure: they only read the image, keep no state between
// calls, and can be used concurrently on different (or unchanging) images.
package polygonize

import (
	"fmt"
	"image"
	"log/slog"
)

// Extract computes the convex silhouette of the opaque pixels of img
// inside region.  The result is in image coordinates.  It is empty if
// the region has no opaque pixels.
//
// Extract panics if cfg is invalid or if region is not contained in the
// image.  Use ExtractFrame to validate sprite-sheet parameters first.
func Extract(img AlphaSampler, region image.Rectangle, cfg Config) Polygon {
	if err := cfg.Validate(); err != nil {
		panic("polygonize: " + err.Error())
	}

	points := Trace(img, region, cfg)
	poly := ConvexHull(points)

	Logger().Debug("silhouette extracted",
		slog.Any("region", region),
		slog.Float64("resolution", cfg.Resolution),
		slog.Float64("margin", cfg.Margin),
		slog.Int("points", len(points)),
		slog.Int("vertices", len(poly)))
	return poly
}

// ExtractFrame computes the convex silhouette of frame f of the sprite
// sheet img.  In contrast to Extract, invalid parameters are reported as
// errors wrapping ErrInvalidRegion or ErrInvalidConfig.
func ExtractFrame(img AlphaSampler, f Frame, cfg Config) (Polygon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := img.Size()
	region, err := f.Region(w, h)
	if err != nil {
		return nil, fmt.Errorf("frame (%d, %d): %w", f.Col, f.Row, err)
	}
	return Extract(img, region, cfg), nil
}

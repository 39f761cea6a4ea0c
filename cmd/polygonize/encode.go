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
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/fxamacker/cbor/v2"

	"seehuhn.de/go/polygonize"
)

// result is the record written for each polygonized frame.
type result struct {
	Region     [4]int       `json:"region" cbor:"region"`
	Resolution float64      `json:"resolution" cbor:"resolution"`
	Margin     float64      `json:"margin" cbor:"margin"`
	Polygon    [][2]float64 `json:"polygon" cbor:"polygon"`
	Coverage   float64      `json:"coverage" cbor:"coverage"`
}

func newResult(region image.Rectangle, cfg polygonize.Config, poly polygonize.Polygon) *result {
	res := &result{
		Region:     [4]int{region.Min.X, region.Min.Y, region.Max.X, region.Max.Y},
		Resolution: cfg.Resolution,
		Margin:     cfg.Margin,
		Polygon:    make([][2]float64, len(poly)),
	}
	for i, v := range poly {
		res.Polygon[i] = [2]float64{v.X, v.Y}
	}
	return res
}

func checkFormat(format string) error {
	switch format {
	case "json", "cbor", "text":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encode(w io.Writer, format string, res *result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "cbor":
		return cbor.NewEncoder(w).Encode(res)
	case "text":
		// one vertex per line
		for _, v := range res.Polygon {
			if _, err := fmt.Fprintf(w, "%g %g\n", v[0], v[1]); err != nil {
				return err
			}
		}
		return nil
	default:
		return checkFormat(format)
	}
}

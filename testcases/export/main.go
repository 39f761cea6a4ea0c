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

// Command export writes the test cases, together with the polygons computed
// for them, to testdata/testcases.json and testdata/testcases.cbor.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"seehuhn.de/go/polygonize"
	"seehuhn.de/go/polygonize/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases" cbor:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}

	data, err := cbor.Marshal(out)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile("testdata/testcases.cbor", data, 0644); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string       `json:"name" cbor:"name"`
	Width      int          `json:"width" cbor:"width"`
	Height     int          `json:"height" cbor:"height"`
	Region     [4]int       `json:"region" cbor:"region"`
	Resolution float64      `json:"resolution" cbor:"resolution"`
	Margin     float64      `json:"margin" cbor:"margin"`
	Polygon    [][2]float64 `json:"polygon" cbor:"polygon"`
	Coverage   float64      `json:"coverage" cbor:"coverage"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	img := polygonize.FromImage(tc.Image())
	h, v := tc.Frames()
	f := polygonize.Frame{HFrames: h, VFrames: v, Col: tc.Col, Row: tc.Row}
	region, err := f.Region(img.Size())
	if err != nil {
		panic(err)
	}
	cfg := polygonize.Config{Resolution: tc.Resolution, Margin: tc.Margin}
	poly := polygonize.Extract(img, region, cfg)

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Region:     [4]int{region.Min.X, region.Min.Y, region.Max.X, region.Max.Y},
		Resolution: tc.Resolution,
		Margin:     tc.Margin,
		Polygon:    make([][2]float64, len(poly)),
		Coverage:   polygonize.Coverage(img, region, poly),
	}
	for i, p := range poly {
		jtc.Polygon[i] = [2]float64{p.X, p.Y}
	}
	return jtc
}

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

// Command genpdf writes a PDF preview for every test case.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/polygonize"
	"seehuhn.de/go/polygonize/preview"
	"seehuhn.de/go/polygonize/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	img := polygonize.FromImage(tc.Image())

	h, v := tc.Frames()
	f := polygonize.Frame{HFrames: h, VFrames: v, Col: tc.Col, Row: tc.Row}
	region, err := f.Region(img.Size())
	if err != nil {
		return err
	}

	cfg := polygonize.Config{Resolution: tc.Resolution, Margin: tc.Margin}
	scene := &preview.Scene{
		Image:   img,
		Region:  region,
		Polygon: polygonize.Extract(img, region, cfg),
	}
	return preview.WritePDF(pdfPath, scene)
}

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

// Command polygonize prints a convex collision polygon for one frame of a
// sprite sheet.
//
// Usage:
//
//	polygonize [flags] sprite.png
//
// The sheet is read as PNG, GIF, BMP or WebP and is divided into
// -hframes × -vframes equally sized frames.  The polygon of the frame at
// column -col and row -row is written to standard output (or to the file
// given by -o) in image coordinates.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/polygonize"
	"seehuhn.de/go/polygonize/preview"
)

type options struct {
	input   string
	frame   polygonize.Frame
	cfg     polygonize.Config
	format  string
	output  string
	preview string
	outline string
}

func main() {
	var (
		hframes    = flag.Int("hframes", 1, "number of frame columns in the sheet")
		vframes    = flag.Int("vframes", 1, "number of frame rows in the sheet")
		col        = flag.Int("col", 0, "column of the frame to polygonize")
		row        = flag.Int("row", 0, "row of the frame to polygonize")
		resolution = flag.Float64("resolution", 0, "number of pixels to skip between samples")
		margin     = flag.Float64("margin", 0, "extra padding around the silhouette, in pixels")
		format     = flag.String("format", "json", "output format: json, cbor or text")
		output     = flag.String("o", "", "write the polygon to this file instead of stdout")
		prev       = flag.String("preview", "", "write a preview to this .pdf or .svg file")
		outline    = flag.String("outline", "", "write the exact traced outline of the frame to this .svg file")
		verbose    = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] sprite.png\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		polygonize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := &options{
		input: flag.Arg(0),
		frame: polygonize.Frame{
			HFrames: *hframes,
			VFrames: *vframes,
			Col:     *col,
			Row:     *row,
		},
		cfg:     polygonize.Config{Resolution: *resolution, Margin: *margin},
		format:  *format,
		output:  *output,
		preview: *prev,
		outline: *outline,
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "polygonize:", err)
		os.Exit(1)
	}
}

func run(opts *options, stdout io.Writer) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if opts.preview != "" {
		if err := checkPreview(opts.preview); err != nil {
			return err
		}
	}
	img, err := loadImage(opts.input)
	if err != nil {
		return err
	}
	sampler := polygonize.FromImage(img)

	poly, err := polygonize.ExtractFrame(sampler, opts.frame, opts.cfg)
	if err != nil {
		return err
	}
	region, err := opts.frame.Region(sampler.Size())
	if err != nil {
		return err
	}

	res := newResult(region, opts.cfg, poly)
	res.Coverage = polygonize.Coverage(sampler, region, poly)
	logger := polygonize.Logger()
	if len(poly) == 0 {
		logger.Warn("no opaque pixels, nothing to generate a collision shape from",
			slog.String("file", opts.input))
	}
	logger.Info("polygon computed",
		slog.String("file", opts.input),
		slog.Int("vertices", len(poly)),
		slog.Float64("coverage", res.Coverage))

	if opts.output == "" {
		err = encode(stdout, opts.format, res)
	} else {
		err = writeFile(opts.output, func(w io.Writer) error {
			return encode(w, opts.format, res)
		})
	}
	if err != nil {
		return err
	}

	if opts.preview != "" {
		scene := &preview.Scene{Image: sampler, Region: region, Polygon: poly}
		if err := writePreview(opts.preview, scene); err != nil {
			return err
		}
	}
	if opts.outline != "" {
		if err := writeOutline(opts.outline, sampler, region); err != nil {
			return err
		}
	}
	return nil
}

func loadImage(fileName string) (img image.Image, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return img, nil
}

func checkPreview(fileName string) error {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".pdf", ".svg":
		return nil
	default:
		return fmt.Errorf("%s: unsupported preview format %q", fileName, ext)
	}
}

// writePreview chooses the preview format based on the file name extension.
func writePreview(fileName string, scene *preview.Scene) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return preview.WritePDF(fileName, scene)
	case ".svg":
		return writeFile(fileName, func(w io.Writer) error {
			return preview.WriteSVG(w, scene)
		})
	default:
		return checkPreview(fileName)
	}
}

// writeFile creates fileName and passes it to write.  Errors from closing
// the file are reported if write itself succeeded.
func writeFile(fileName string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

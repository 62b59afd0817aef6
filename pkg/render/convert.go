package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrNoConverter is returned when rsvg-convert is not on PATH.
var ErrNoConverter = errors.New("rsvg-convert not found: install librsvg (brew install librsvg, apt install librsvg2-bin)")

// converter is the binary used for SVG conversion; tests point it elsewhere.
var converter = "rsvg-convert"

// HasConverter reports whether SVG conversion is available.
func HasConverter() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

// ToPDF converts an SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "-f", "pdf")
}

// ToPNG converts an SVG document to PNG. A scale of 2 doubles the pixel
// size; values <= 0 mean 1.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(svg, "-f", "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(converter)
	if err != nil {
		return nil, ErrNoConverter
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", converter, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}

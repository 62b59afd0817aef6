package render

import (
	"bytes"
	"errors"
	"testing"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4" fill="red"/></svg>`

func TestMissingConverter(t *testing.T) {
	old := converter
	converter = "definitely-not-a-real-binary-myreality"
	t.Cleanup(func() { converter = old })

	if HasConverter() {
		t.Fatal("HasConverter() = true for a missing binary")
	}
	if _, err := ToPDF([]byte(tinySVG)); !errors.Is(err, ErrNoConverter) {
		t.Errorf("ToPDF error = %v, want ErrNoConverter", err)
	}
	if _, err := ToPNG([]byte(tinySVG), 2); !errors.Is(err, ErrNoConverter) {
		t.Errorf("ToPNG error = %v, want ErrNoConverter", err)
	}
}

func TestToPNG(t *testing.T) {
	if !HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG([]byte(tinySVG), 0)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG: % x", png[:min(8, len(png))])
	}
}

func TestToPDF(t *testing.T) {
	if !HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/KineticBytes/echem-cli/internal/echem"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderWritesPNG(t *testing.T) {
	a := echem.Analyze("ID_PotStatic\nt(s) i(A)\n0.0 1.0e-3\n1.0 2.0e-3\n2.0 1.5e-3\n")
	path := filepath.Join(t.TempDir(), "run.png")

	if err := Render(a, Options{Width: 640, Height: 480}, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("output is not a PNG (first bytes %v)", data[:4])
	}
}

func TestRenderPadsSinglePointSeries(t *testing.T) {
	a := echem.Analyze("t(s) i(A)\n1.0 5.0\n")
	path := filepath.Join(t.TempDir(), "single.png")
	if err := Render(a, Options{Width: 320, Height: 240}, path); err != nil {
		t.Fatalf("render single point: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
}

func TestRenderEmptySeriesFails(t *testing.T) {
	a := echem.Analyze("no data here\n")
	if err := Render(a, Options{Width: 320, Height: 240}, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Fatal("expected an error for an empty series")
	}
}

func TestRenderReplacesPreviousChart(t *testing.T) {
	a := echem.Analyze("t(s) i(A)\n0 1\n1 2\n")
	path := filepath.Join(t.TempDir(), "run.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Render(a, Options{Width: 320, Height: 240}, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("previous chart was not replaced")
	}
}

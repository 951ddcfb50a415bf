package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestRun_CropsDirectory(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "cropped")
	writeImage(t, filepath.Join(src, "a.png"), 400, 300)
	writeImage(t, filepath.Join(src, "b.png"), 200, 800)
	var stdout, stderr bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "config.json")
	code := run(context.Background(), []string{"-config", cfg, "-log-level", "error", src, out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr=%s", code, stderr.String())
	}
	lines := strings.Fields(stdout.String())
	if len(lines) != 2 {
		t.Fatalf("expected 2 output paths, got %q", stdout.String())
	}
	img, err := imaging.Open(filepath.Join(out, "a.png"))
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	// 300 * 1206 / 2622 = 137.99 -> 138
	if b := img.Bounds(); b.Dy() != 300 || b.Dx() != 138 {
		t.Fatalf("a.png cropped to %dx%d, want 138x300", b.Dx(), b.Dy())
	}
}

func TestRun_UsageAndErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	cfg := filepath.Join(t.TempDir(), "config.json")
	if code := run(context.Background(), []string{"-config", cfg, filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 for missing input, got %d", code)
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := run(context.Background(), []string{"-config", cfg, "-log-level", "error", bad, t.TempDir()}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 for undecodable input, got %d", code)
	}
}

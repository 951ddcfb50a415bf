package cropper

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/soocke/ratio-crop-go/domain/crop"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestSupportedImage(t *testing.T) {
	for _, p := range []string{"a.jpg", "b.JPEG", "c.png", "d.WebP"} {
		if !SupportedImage(p) {
			t.Fatalf("%s should be supported", p)
		}
	}
	for _, p := range []string{"a.gif", "b", "c.png.txt"} {
		if SupportedImage(p) {
			t.Fatalf("%s should not be supported", p)
		}
	}
}

func TestOutputPath(t *testing.T) {
	if got, want := OutputPath(filepath.Join("in", "shot.PNG"), "", "_cropped"), filepath.Join("in", "shot_cropped.PNG"); got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
	if got, want := OutputPath("shot.webp", "out", ""), filepath.Join("out", "shot.png"); got != want {
		t.Fatalf("OutputPath webp = %q, want %q", got, want)
	}
}

func TestCrop_WritesRegionNextToInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "img.png")
	writePNG(t, in, 120, 80)
	svc := NewService(DefaultOptions(), nil)
	out, err := svc.Crop(context.Background(), in, crop.Result{X: 10, Y: 20, Width: 30, Height: 40})
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if want := filepath.Join(dir, "img_cropped.png"); out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
	got, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 30 || b.Dy() != 40 {
		t.Fatalf("output size = %dx%d, want 30x40", b.Dx(), b.Dy())
	}
	r, g, _, _ := got.At(0, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 {
		t.Fatalf("top-left pixel = (%d,%d), want (10,20)", r>>8, g>>8)
	}
}

func TestCrop_Errors(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(DefaultOptions(), nil)
	if _, err := svc.Crop(context.Background(), filepath.Join(dir, "x.gif"), crop.Result{Width: 1, Height: 1}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	in := filepath.Join(dir, "img.png")
	writePNG(t, in, 20, 20)
	if _, err := svc.Crop(context.Background(), in, crop.Result{X: 50, Y: 50, Width: 10, Height: 10}); !errors.Is(err, ErrEmptyCrop) {
		t.Fatalf("expected ErrEmptyCrop, got %v", err)
	}
	if _, err := svc.Crop(context.Background(), filepath.Join(dir, "missing.png"), crop.Result{Width: 1, Height: 1}); err == nil {
		t.Fatalf("expected error for missing file")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Crop(ctx, in, crop.Result{Width: 5, Height: 5}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCenterCropAll(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	writePNG(t, filepath.Join(src, "wide.png"), 300, 200)
	writePNG(t, filepath.Join(src, "tall.png"), 100, 400)
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	inputs, err := ResolveInputs(src)
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %v", inputs)
	}
	rep := CenterCropAll(context.Background(), NewService(DefaultOptions(), nil), inputs, out, nil)
	if err := rep.Err(); err != nil {
		t.Fatalf("batch errors: %v", err)
	}
	if len(rep.Done) != 2 {
		t.Fatalf("expected 2 outputs, got %v", rep.Done)
	}
	wide, err := imaging.Open(filepath.Join(out, "wide.png"))
	if err != nil {
		t.Fatalf("open wide: %v", err)
	}
	want := crop.CenterCrop(300, 200, crop.DefaultRatio)
	if b := wide.Bounds(); b.Dx() != want.Width || b.Dy() != want.Height {
		t.Fatalf("wide output %dx%d, want %dx%d", b.Dx(), b.Dy(), want.Width, want.Height)
	}
}

func TestCenterCropAll_OutputCollision(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	first := filepath.Join(src, "x.png")
	second := filepath.Join(src, "x.webp")
	writePNG(t, first, 300, 200)
	rep := CenterCropAll(context.Background(), NewService(DefaultOptions(), nil), []string{first, second}, out, nil)
	if len(rep.Done) != 1 || rep.Done[0] != filepath.Join(out, "x.png") {
		t.Fatalf("expected only x.png written, got %v", rep.Done)
	}
	if err := rep.Failed[second]; !errors.Is(err, ErrOutputCollision) {
		t.Fatalf("expected ErrOutputCollision for %s, got %v", second, err)
	}
	img, err := imaging.Open(rep.Done[0])
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if want := crop.CenterCrop(300, 200, crop.DefaultRatio); img.Bounds().Dx() != want.Width {
		t.Fatalf("output overwritten: width %d, want %d", img.Bounds().Dx(), want.Width)
	}
}

func TestCenterCropAll_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := CenterCropAll(ctx, NewService(DefaultOptions(), nil), []string{"a.png", "b.png"}, t.TempDir(), nil)
	if rep.Skipped != 2 || len(rep.Done) != 0 {
		t.Fatalf("expected all inputs skipped, got %+v", rep)
	}
}

func TestResolveInputs_Errors(t *testing.T) {
	if _, err := ResolveInputs(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing path")
	}
	if _, err := ResolveInputs(t.TempDir()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat for empty dir, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "img.png")
	writePNG(t, in, 16, 9)
	img, err := Load(in)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Fatalf("loaded %dx%d, want 16x9", b.Dx(), b.Dy())
	}
	if _, err := Load(filepath.Join(dir, "img.bmp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

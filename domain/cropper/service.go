package cropper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the webp decoder for imaging.Open

	"github.com/soocke/ratio-crop-go/domain/crop"
)

var (
	ErrUnsupportedFormat = errors.New("cropper: unsupported image format")
	ErrEmptyCrop         = errors.New("cropper: crop rectangle is empty")
	ErrOutputCollision   = errors.New("cropper: output path already written")
)

var supportedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// SupportedImage reports whether path has an extension the service can read.
func SupportedImage(path string) bool {
	return supportedExt[strings.ToLower(filepath.Ext(path))]
}

// Options configures the crop service.
type Options struct {
	Ratio       crop.Ratio
	JPEGQuality int    // 1-100
	Suffix      string // appended to the file stem for in-place crops
}

// DefaultOptions mirrors the desktop tool: 95% JPEG quality, outputs named
// <stem>_cropped<ext>.
func DefaultOptions() Options {
	return Options{Ratio: crop.DefaultRatio, JPEGQuality: 95, Suffix: "_cropped"}
}

// Service reads an image, cuts a rectangle out of it and writes the result.
type Service interface {
	// Crop writes the region r of inputPath next to the input and returns
	// the output path.
	Crop(ctx context.Context, inputPath string, r crop.Result) (string, error)
	// CenterCrop writes the centred target-ratio crop of inputPath to
	// outputPath and returns the region used.
	CenterCrop(ctx context.Context, inputPath, outputPath string) (crop.Result, error)
}

type service struct {
	opts   Options
	logger *slog.Logger
}

// NewService returns an imaging-backed Service.
func NewService(opts Options, logger *slog.Logger) Service {
	def := DefaultOptions()
	if !opts.Ratio.Valid() {
		opts.Ratio = def.Ratio
	}
	if opts.JPEGQuality < 1 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = def.JPEGQuality
	}
	return &service{opts: opts, logger: logger}
}

func (s *service) Crop(ctx context.Context, inputPath string, r crop.Result) (string, error) {
	out := OutputPath(inputPath, "", s.opts.Suffix)
	if err := s.cropTo(ctx, inputPath, out, func(image.Rectangle) (crop.Result, error) { return r, nil }); err != nil {
		return "", err
	}
	return out, nil
}

func (s *service) CenterCrop(ctx context.Context, inputPath, outputPath string) (crop.Result, error) {
	var used crop.Result
	err := s.cropTo(ctx, inputPath, outputPath, func(b image.Rectangle) (crop.Result, error) {
		used = crop.CenterCrop(b.Dx(), b.Dy(), s.opts.Ratio)
		return used, nil
	})
	return used, err
}

// cropTo loads inputPath, asks region for the rectangle given the image
// bounds, crops and saves to outputPath.
func (s *service) cropTo(ctx context.Context, inputPath, outputPath string, region func(image.Rectangle) (crop.Result, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := Load(inputPath)
	if err != nil {
		return err
	}
	r, err := region(img.Bounds())
	if err != nil {
		return err
	}
	rect := r.Image().Add(img.Bounds().Min).Intersect(img.Bounds())
	if rect.Empty() {
		return fmt.Errorf("%w: %+v in %s", ErrEmptyCrop, r, inputPath)
	}
	cropped := imaging.Crop(img, rect)
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := imaging.Save(cropped, outputPath, imaging.JPEGQuality(s.opts.JPEGQuality)); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	if s.logger != nil {
		s.logger.Info("image cropped",
			"input", inputPath,
			"output", outputPath,
			"left", rect.Min.X, "top", rect.Min.Y, "right", rect.Max.X, "bottom", rect.Max.Y,
			"width", cropped.Bounds().Dx(), "height", cropped.Bounds().Dy(),
		)
	}
	return nil
}

// Load decodes a supported image file. The editor displays exactly what the
// service will later crop.
func Load(path string) (image.Image, error) {
	if !SupportedImage(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}

// OutputPath builds <dir>/<stem><suffix><ext>. An empty dir keeps the
// input's directory. WebP has no encoder, so such outputs become PNG.
func OutputPath(inputPath, dir, suffix string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.EqualFold(ext, ".webp") {
		ext = ".png"
	}
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, stem+suffix+ext)
}

// ListImages returns the supported image files directly inside dir, sorted
// by name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !SupportedImage(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

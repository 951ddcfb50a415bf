package cropper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// BatchReport summarises a batch run.
type BatchReport struct {
	Done    []string // output paths written
	Failed  map[string]error
	Skipped int // inputs left unprocessed after cancellation
}

// ResolveInputs expands path into the images to process: the file itself,
// or every supported image directly inside a directory.
func ResolveInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := ListImages(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no supported images in %s", ErrUnsupportedFormat, path)
	}
	return files, nil
}

// CenterCropAll centre-crops every input into outDir, keeping file names.
// Failures are collected per file; the run stops early only when ctx is
// cancelled. An input whose output name was already written in this run
// (x.png and x.webp) fails with ErrOutputCollision instead of overwriting.
func CenterCropAll(ctx context.Context, svc Service, inputs []string, outDir string, logger *slog.Logger) BatchReport {
	rep := BatchReport{Failed: make(map[string]error)}
	written := make(map[string]string, len(inputs))
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			rep.Skipped = len(inputs) - i
			if logger != nil {
				logger.Warn("batch cancelled", "remaining", rep.Skipped, "error", err)
			}
			break
		}
		out := filepath.Join(outDir, filepath.Base(OutputPath(in, "", "")))
		if prev, dup := written[out]; dup {
			rep.Failed[in] = fmt.Errorf("%w: %s (from %s)", ErrOutputCollision, out, filepath.Base(prev))
			if logger != nil {
				logger.Error("output collision", "file", in, "output", out, "previous", prev)
			}
			continue
		}
		if logger != nil {
			logger.Info("processing", "file", filepath.Base(in), "index", i+1, "total", len(inputs))
		}
		if _, err := svc.CenterCrop(ctx, in, out); err != nil {
			rep.Failed[in] = err
			if logger != nil {
				logger.Error("center crop failed", "file", in, "error", err)
			}
			continue
		}
		written[out] = in
		rep.Done = append(rep.Done, out)
	}
	return rep
}

// Err returns a combined error for all failed files, or nil.
func (r BatchReport) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for path, err := range r.Failed {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}
	return errors.Join(errs...)
}

package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/ratio-crop-go/domain/crop"
	"github.com/soocke/ratio-crop-go/domain/cropper"
	"github.com/soocke/ratio-crop-go/ui/images"
	"github.com/soocke/ratio-crop-go/ui/model"
)

// FileChooser asks the user for an image path. An empty result means the
// dialog was dismissed.
type FileChooser interface {
	ChooseImage(initialDir string) string
}

// EditorOpener is the part of EditorPresenter the open flow drives.
type EditorOpener interface {
	Active() bool
	Begin(path string, display image.Image, f crop.Frame, view EditorView) error
}

// OpenPresenter turns a chosen path into a running editor session.
type OpenPresenter struct {
	Chooser    FileChooser
	Editor     EditorOpener
	Status     *model.StatusModel
	Load       func(path string) (image.Image, error)
	NewView    func(title string, f crop.Frame) EditorView
	Remember   func(dir string)
	MaxW, MaxH int
	LastDir    string
	logger     *slog.Logger
}

// NewOpenPresenter wires an OpenPresenter that decodes with cropper.Load.
func NewOpenPresenter(chooser FileChooser, ed EditorOpener, status *model.StatusModel, newView func(string, crop.Frame) EditorView, maxW, maxH int, logger *slog.Logger) *OpenPresenter {
	return &OpenPresenter{Chooser: chooser, Editor: ed, Status: status, Load: cropper.Load, NewView: newView, MaxW: maxW, MaxH: maxH, logger: logger}
}

// Choose prompts for a file and opens it.
func (p *OpenPresenter) Choose() {
	if p == nil || p.Chooser == nil {
		return
	}
	path := p.Chooser.ChooseImage(p.LastDir)
	if path == "" {
		return
	}
	_ = p.Open(path)
}

// Open validates path, scales it for display and begins an editing session.
// Failures are reported through the status model and returned.
func (p *OpenPresenter) Open(path string) error {
	if p == nil || p.Editor == nil || p.NewView == nil {
		return fmt.Errorf("open presenter not wired")
	}
	if p.Editor.Active() {
		err := fmt.Errorf("finish the current crop before opening %s", filepath.Base(path))
		p.Status.Set(model.StatusError, err.Error())
		return err
	}
	if !cropper.SupportedImage(path) {
		err := fmt.Errorf("%w: %s", cropper.ErrUnsupportedFormat, filepath.Base(path))
		p.Status.Set(model.StatusError, "Unsupported file: "+filepath.Base(path))
		return err
	}
	p.Status.Set(model.StatusBusy, "Loading "+filepath.Base(path)+"...")
	load := p.Load
	if load == nil {
		load = cropper.Load
	}
	src, err := load(path)
	if err != nil {
		p.fail(path, err)
		return err
	}
	b := src.Bounds()
	f, err := crop.NewFrame(b.Dx(), b.Dy(), p.MaxW, p.MaxH)
	if err != nil {
		p.fail(path, err)
		return err
	}
	display := src
	if f.Width != b.Dx() || f.Height != b.Dy() {
		display = images.ScaleTo(src, f.Width, f.Height)
	}
	view := p.NewView(filepath.Base(path), f)
	if err := p.Editor.Begin(path, display, f, view); err != nil {
		if view != nil {
			view.Close()
		}
		p.fail(path, err)
		return err
	}
	p.LastDir = filepath.Dir(path)
	if p.Remember != nil {
		p.Remember(p.LastDir)
	}
	if p.logger != nil {
		p.logger.Info("image opened", "path", path, "width", b.Dx(), "height", b.Dy(), "scale", f.Scale)
	}
	return nil
}

func (p *OpenPresenter) fail(path string, err error) {
	p.Status.Set(model.StatusError, "Could not open "+filepath.Base(path)+": "+err.Error())
	if p.logger != nil {
		p.logger.Error("open image", "path", path, "error", err)
	}
}

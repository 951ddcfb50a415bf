package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/ratio-crop-go/domain/crop"
	"github.com/soocke/ratio-crop-go/domain/editor"
	"github.com/soocke/ratio-crop-go/ui/images"
	"github.com/soocke/ratio-crop-go/ui/model"
)

// Cropper narrows the crop service to what the editor needs.
type Cropper interface {
	Crop(ctx context.Context, inputPath string, r crop.Result) (string, error)
}

// EditorView is the editor window surface. Images passed to it are only
// valid for the duration of the call.
type EditorView interface {
	ShowFrame(img image.Image)
	ShowPreview(img image.Image)
	SetInfo(text string)
	Close()
}

// Preview thumbnail bounds.
const (
	previewMaxW = 140
	previewMaxH = 300
)

// EditorPresenter owns the active editing session. It is the session's
// Redrawer: redraw requests are coalesced and painted on the next Tick.
type EditorPresenter struct {
	cropper Cropper
	status  *model.StatusModel
	history *model.HistoryModel
	opts    editor.Options
	style   images.OverlayStyle
	logger  *slog.Logger

	session *editor.Session
	view    EditorView
	display image.Image
	pending *editor.Overlay
	lastOut string
}

// NewEditorPresenter constructs an idle presenter.
func NewEditorPresenter(c Cropper, status *model.StatusModel, history *model.HistoryModel, opts editor.Options, logger *slog.Logger) *EditorPresenter {
	return &EditorPresenter{cropper: c, status: status, history: history, opts: opts, style: images.DefaultOverlayStyle(), logger: logger}
}

// Configure replaces the crop service and the session options. The service
// applies from the next confirm, the options from the next Begin.
func (p *EditorPresenter) Configure(c Cropper, opts editor.Options) {
	if p == nil {
		return
	}
	p.cropper, p.opts = c, opts
}

// Active reports whether an editing session is open.
func (p *EditorPresenter) Active() bool { return p != nil && p.session.Active() }

// Begin opens a session on path. display must already be scaled to f.
func (p *EditorPresenter) Begin(path string, display image.Image, f crop.Frame, view EditorView) error {
	if p == nil {
		return editor.ErrNoSession
	}
	if p.Active() {
		return errors.New("an image is already being edited")
	}
	p.view = view
	p.display = display
	p.pending = nil
	p.session, _ = editor.BeginSession(path, f, p.opts, p, p.cropFile, p.logger)
	p.status.Set(model.StatusInfo, "Editing "+filepath.Base(path))
	return nil
}

// Redraw implements editor.Redrawer.
func (p *EditorPresenter) Redraw(ov editor.Overlay) {
	p.pending = &ov
}

// Tick paints the most recent pending overlay, if any.
func (p *EditorPresenter) Tick() {
	if p == nil || p.pending == nil || p.view == nil {
		return
	}
	ov := *p.pending
	p.pending = nil
	frame := images.RenderOverlay(p.display, ov, p.style)
	p.view.ShowFrame(frame)
	images.RecycleFrame(frame)
	if p.display != nil {
		if region, _, err := images.ExtractRegion(p.display, ov.Rect.Image()); err == nil {
			p.view.ShowPreview(images.ScaleToFit(region, previewMaxW, previewMaxH))
		}
	}
	res := crop.ToSourceSpace(ov.Rect, ov.Frame)
	p.view.SetInfo(fmt.Sprintf("%d × %d px at (%d, %d)", res.Width, res.Height, res.X, res.Y))
}

func (p *EditorPresenter) PointerDown(x, y int) {
	if p.Active() {
		p.session.OnPointerDown(image.Pt(x, y))
	}
}

func (p *EditorPresenter) PointerMove(x, y int) {
	if p.Active() {
		p.session.OnPointerMove(image.Pt(x, y))
	}
}

func (p *EditorPresenter) PointerUp() {
	if p.Active() {
		p.session.OnPointerUp()
	}
}

// Reset restores the centred rectangle.
func (p *EditorPresenter) Reset() {
	if p.Active() {
		p.session.OnResetRequested()
	}
}

// Confirm crops the image and closes the editor. Calls made while a gesture
// is in progress are ignored.
func (p *EditorPresenter) Confirm() {
	if !p.Active() {
		return
	}
	if g := p.session.Gesture(); g.State != editor.Idle {
		if p.logger != nil {
			p.logger.Warn("confirm ignored", "error", editor.ErrGestureActive, "gesture", g.State)
		}
		return
	}
	p.status.Set(model.StatusBusy, "Cropping...")
	p.lastOut = ""
	err := p.session.OnConfirm()
	switch {
	case errors.Is(err, editor.ErrGestureActive), errors.Is(err, editor.ErrNoSession):
		if p.logger != nil {
			p.logger.Warn("confirm ignored", "error", err)
		}
		return
	case err != nil:
		p.history.RecordFailure()
		p.status.Set(model.StatusError, "Crop failed: "+err.Error())
		if p.logger != nil {
			p.logger.Error("crop failed", "path", p.session.ImagePath(), "error", err)
		}
	default:
		p.history.RecordSuccess(p.lastOut)
		p.status.Set(model.StatusSuccess, "Saved "+filepath.Base(p.lastOut))
	}
	p.close()
}

// Cancel closes the editor without cropping.
func (p *EditorPresenter) Cancel() {
	if !p.Active() {
		return
	}
	if err := p.session.OnCancel(); err != nil {
		return
	}
	p.status.Set(model.StatusInfo, "Crop cancelled")
	p.close()
}

func (p *EditorPresenter) cropFile(path string, r crop.Result) error {
	if p.cropper == nil {
		return errors.New("no crop service")
	}
	out, err := p.cropper.Crop(context.Background(), path, r)
	if err != nil {
		return err
	}
	p.lastOut = out
	return nil
}

func (p *EditorPresenter) close() {
	p.pending = nil
	p.display = nil
	if p.view != nil {
		p.view.Close()
		p.view = nil
	}
}

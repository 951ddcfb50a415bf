package view

import (
	"image"

	"github.com/soocke/ratio-crop-go/domain/crop"
	"github.com/soocke/ratio-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// EditorHandlers receives user input from the editor window. Coordinates
// are display pixels relative to the image's top-left corner.
type EditorHandlers struct {
	PointerDown func(x, y int)
	PointerMove func(x, y int)
	PointerUp   func()
	Reset       func()
	Cancel      func()
	Confirm     func()
}

// EditorWindow is the modal-style Toplevel hosting one editing session.
type EditorWindow struct {
	win     *ToplevelWidget
	canvas  *photoLabel
	preview *photoLabel
	info    *LabelWidget
}

// NewEditorWindow creates the window sized for frame f. The image label is
// exactly f.Width x f.Height with no border so event coordinates map 1:1 to
// display pixels.
func NewEditorWindow(title string, f crop.Frame, h EditorHandlers) *EditorWindow {
	w := &EditorWindow{}
	win := App.Toplevel(Background(theme.ColorBg))
	win.WmTitle("Crop: " + title)
	w.win = win
	GridColumnConfigure(win.Window, 0, Weight(1))

	canvasPhoto := NewPhoto(Data(placeholderPNG(f.Width, f.Height)))
	canvas := win.Label(Image(canvasPhoto), Borderwidth(0), Highlightthickness(0), Padx(0), Pady(0), Cursor("crosshair"))
	Grid(canvas, Row(0), Column(0), Rowspan(2), Padx("2m"), Pady("2m"))
	w.canvas = newPhotoLabel(canvas, canvasPhoto)

	side := win.Frame(Background(theme.ColorBg))
	Grid(side, Row(0), Column(1), Sticky("n"), Padx("1m"), Pady("2m"))
	Grid(win.Label(Txt("Preview"), Background(theme.ColorBg)), In(side), Row(0), Column(0), Sticky("w"))
	previewPhoto := NewPhoto(Data(placeholderPNG(60, 130)))
	preview := win.Label(Image(previewPhoto), Borderwidth(1), Relief("sunken"))
	Grid(preview, In(side), Row(1), Column(0), Pady("0.5m"))
	w.preview = newPhotoLabel(preview, previewPhoto)
	w.info = win.Label(Txt(""), Background(theme.ColorBg), Foreground(theme.ColorTextMuted), Wraplength("40m"))
	Grid(w.info, In(side), Row(2), Column(0), Sticky("w"), Pady("0.5m"))

	controls := win.Frame(Background(theme.ColorBg))
	Grid(controls, Row(1), Column(1), Sticky("s"), Padx("1m"), Pady("2m"))
	reset := win.TButton(Txt("Reset [R]"), Command(call(h.Reset)))
	Grid(reset, In(controls), Row(0), Column(0), Sticky("we"), Pady("0.2m"))
	cancel := win.TButton(Style(theme.StyleDangerButton), Txt("Cancel [Esc]"), Command(call(h.Cancel)))
	Grid(cancel, In(controls), Row(1), Column(0), Sticky("we"), Pady("0.2m"))
	confirm := win.TButton(Style(theme.StyleSuccessButton), Txt("Confirm Crop [Enter]"), Command(call(h.Confirm)))
	Grid(confirm, In(controls), Row(2), Column(0), Sticky("we"), Pady("0.2m"))

	Bind(canvas, "<ButtonPress-1>", Command(func(e *Event) { callXY(h.PointerDown, e) }))
	Bind(canvas, "<B1-Motion>", Command(func(e *Event) { callXY(h.PointerMove, e) }))
	Bind(canvas, "<ButtonRelease-1>", Command(call(h.PointerUp)))
	Bind(win, "<Return>", Command(call(h.Confirm)))
	Bind(win, "<KP_Enter>", Command(call(h.Confirm)))
	Bind(win, "<Escape>", Command(call(h.Cancel)))
	Bind(win, "<KeyPress-r>", Command(call(h.Reset)))
	Bind(win, "<KeyPress-R>", Command(call(h.Reset)))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", call(h.Cancel))
	Focus(win)
	return w
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

func callXY(fn func(x, y int), e *Event) {
	if fn != nil && e != nil {
		fn(e.X, e.Y)
	}
}

// ShowFrame replaces the composited editor image.
func (w *EditorWindow) ShowFrame(img image.Image) {
	if w != nil {
		w.canvas.set(img)
	}
}

// ShowPreview replaces the crop preview thumbnail.
func (w *EditorWindow) ShowPreview(img image.Image) {
	if w != nil {
		w.preview.set(img)
	}
}

// SetInfo shows the crop size in source pixels.
func (w *EditorWindow) SetInfo(text string) {
	if w != nil && w.info != nil {
		w.info.Configure(Txt(text))
	}
}

// Close destroys the window and frees its photos. Safe to call twice.
func (w *EditorWindow) Close() {
	if w == nil || w.win == nil {
		return
	}
	w.canvas.release()
	w.preview.release()
	Destroy(w.win)
	w.win = nil
}

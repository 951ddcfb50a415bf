package view

import (
	"fmt"
	"log/slog"

	"github.com/soocke/ratio-crop-go/config"
	"github.com/soocke/ratio-crop-go/ui/model"
	"github.com/soocke/ratio-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the main window layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats       CropStats
	ConfigPanel ConfigPanel

	// Widgets
	StatusLabel *TLabelWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onOpen func(), onExit func(), onConfigApplied func(*config.Config)) {
	if rv == nil {
		return
	}
	GridColumnConfigure(App, 0, Weight(1))

	header := Frame(Background(theme.ColorBg))
	Grid(header, Row(0), Column(0), Sticky("we"), Padx("3m"), Pady("2m"))
	Grid(TLabel(Style(theme.StyleTitleLabel), Txt("Smart Cropper")), In(header), Row(0), Column(0), Sticky("w"))
	subtitle := fmt.Sprintf("Crop images to a %d:%d aspect ratio", rv.cfg.RatioW, rv.cfg.RatioH)
	Grid(TLabel(Style(theme.StyleMutedLabel), Txt(subtitle)), In(header), Row(1), Column(0), Sticky("w"))

	actions := Frame(Background(theme.ColorBg))
	Grid(actions, Row(1), Column(0), Sticky("we"), Padx("3m"), Pady("1m"))
	openBtn := TButton(Style(theme.StylePrimaryButton), Txt("Open Image"), Command(onOpen))
	Grid(openBtn, In(actions), Row(0), Column(0), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(actions), Row(0), Column(1), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
	rv.Stats = NewCropStats(actions, 0, 2)

	rv.StatusLabel = TLabel(Style(theme.StyleStatusInfo), Txt("Select an image to crop"))
	Grid(rv.StatusLabel, Row(2), Column(0), Sticky("we"), Padx("3m"), Pady("1m"))

	settings := Frame(Borderwidth(1), Relief("groove"))
	Grid(settings, Row(3), Column(0), Sticky("we"), Padx("3m"), Pady("2m"))
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, onConfigApplied)
	rv.ConfigPanel.Build(settings, 0)
}

// ChooseImage opens the native file dialog. It returns "" when dismissed.
func (rv *RootView) ChooseImage(initialDir string) string {
	opts := []Opt{
		Title("Select an image"),
		Filetypes([]FileType{
			{TypeName: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".webp"}},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	}
	if initialDir != "" {
		opts = append(opts, Initialdir(initialDir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 {
		return ""
	}
	return files[0]
}

// SetStatus updates the status line text and colour.
func (rv *RootView) SetStatus(kind model.StatusKind, text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Style(theme.StatusStyle(kind)), Txt(text))
	}
}

// SetCounter updates the crop counters.
func (rv *RootView) SetCounter(completed, failed int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.Set(completed, failed)
	}
}

// SetConfigEditable toggles settings editability; disabled while editing.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/ratio-crop-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the settings form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func(*config.Config)
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApplied runs after a
// successful save so running components can pick up the new values.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func(*config.Config)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("minSize", "Min Crop Width (px)", fmt.Sprintf("%d", c.MinSize))
	makeRow("handleSize", "Handle Size (px)", fmt.Sprintf("%d", c.HandleSize))
	makeRow("maxDisplayW", "Max Display Width", fmt.Sprintf("%d", c.MaxDisplayW))
	makeRow("maxDisplayH", "Max Display Height", fmt.Sprintf("%d", c.MaxDisplayH))
	makeRow("jpegQuality", "JPEG Quality (1-100)", fmt.Sprintf("%d", c.JPEGQuality))
	makeRow("outputSuffix", "Output Suffix", c.OutputSuffix)
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(v.text(w)); ok {
			*dst = i
		}
	}
	assignInt("minSize", &cfg.MinSize)
	assignInt("handleSize", &cfg.HandleSize)
	assignInt("maxDisplayW", &cfg.MaxDisplayW)
	assignInt("maxDisplayH", &cfg.MaxDisplayH)
	assignInt("jpegQuality", &cfg.JPEGQuality)
	if w := v.widgets["outputSuffix"]; w != nil {
		cfg.OutputSuffix = strings.TrimSpace(v.text(w))
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied(v.cfg)
	}
}

func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}

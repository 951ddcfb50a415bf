package app

import (
	"log/slog"

	"github.com/soocke/ratio-crop-go/config"
	"github.com/soocke/ratio-crop-go/domain/crop"
	"github.com/soocke/ratio-crop-go/domain/cropper"
	"github.com/soocke/ratio-crop-go/logging"
	"github.com/soocke/ratio-crop-go/ui/model"
	"github.com/soocke/ratio-crop-go/ui/presenter"
	"github.com/soocke/ratio-crop-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger
	Status  *model.StatusModel
	History *model.HistoryModel
	Cropper cropper.Service

	RootView *view.RootView

	// Presenters
	Editor          *presenter.EditorPresenter
	Open            *presenter.OpenPresenter
	StatusPresenter *presenter.StatusPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components. No Tk widgets are created here;
// RootView.Build and the editor window factory do that on demand.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Status = model.NewStatusModel("Select an image to crop")
	c.History = model.NewHistoryModel()
	c.Cropper = cropper.NewService(cfg.CropperOptions(), logging.WithComponent(logger, "cropper"))

	c.RootView = view.NewRootView(cfg, cfgPath, logger)

	c.Editor = presenter.NewEditorPresenter(c.Cropper, c.Status, c.History, cfg.EditorOptions(), logging.WithComponent(logger, "editor"))
	c.Open = presenter.NewOpenPresenter(c.RootView, c.Editor, c.Status, c.newEditorView, cfg.MaxDisplayW, cfg.MaxDisplayH, logging.WithComponent(logger, "open"))
	c.Open.LastDir = cfg.LastDir
	c.Open.Remember = c.rememberDir
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, c.History, c.Editor.Active, c.RootView)
	// Loop scheduling is attached by the app once the Tk loop runs.
	c.Loop = presenter.NewLoop(c.Editor, c.StatusPresenter, nil)
	return c
}

// ApplyConfig pushes edited settings into the running components.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	if c == nil || cfg == nil {
		return
	}
	c.Config = cfg
	c.Cropper = cropper.NewService(cfg.CropperOptions(), logging.WithComponent(c.Logger, "cropper"))
	c.Editor.Configure(c.Cropper, cfg.EditorOptions())
	c.Open.MaxW, c.Open.MaxH = cfg.MaxDisplayW, cfg.MaxDisplayH
	c.Status.Set(model.StatusInfo, "Settings applied")
}

func (c *AppContainer) newEditorView(title string, f crop.Frame) presenter.EditorView {
	ed := c.Editor
	return view.NewEditorWindow(title, f, view.EditorHandlers{
		PointerDown: ed.PointerDown,
		PointerMove: ed.PointerMove,
		PointerUp:   ed.PointerUp,
		Reset:       ed.Reset,
		Cancel:      ed.Cancel,
		Confirm:     ed.Confirm,
	})
}

func (c *AppContainer) rememberDir(dir string) {
	if c.Config.LastDir == dir {
		return
	}
	c.Config.LastDir = dir
	if err := c.Config.Save(c.CfgPath); err != nil && c.Logger != nil {
		c.Logger.Warn("config save failed", "error", err)
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/ratio-crop-go/assets"
	"github.com/soocke/ratio-crop-go/debug"
	"github.com/soocke/ratio-crop-go/ui/theme"
)

const (
	tick = 30 * time.Millisecond
)

// App hosts the Tk main window and drives the presenter loop.
type App struct {
	c       *AppContainer
	logger  *slog.Logger
	afterID string
	stop    context.CancelFunc
}

func NewApp(title string, width, height int, c *AppContainer) *App {
	a := &App{c: c, logger: c.Logger}
	tk.App.WmTitle(title)
	if len(assets.IconPNG) > 0 {
		tk.App.IconPhoto(tk.NewPhoto(tk.Data(assets.IconPNG)))
	}
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the main window, opens initialPath when given and blocks in
// the Tk event loop until the window is closed.
func (a *App) Start(initialPath string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	if a.c.Config.Debug {
		debug.StartStatsLogger(ctx, 5*time.Second, a.logger.With("component", "debug"))
	}

	theme.InitStyles()
	a.c.RootView.Build(a.c.Open.Choose, a.exitHandler, a.c.ApplyConfig)
	a.c.Loop.Schedule = a.scheduleUpdate

	if initialPath != "" {
		tk.TclAfter(tick, func() {
			if err := a.c.Open.Open(initialPath); err != nil && a.logger != nil {
				a.logger.Warn("initial image not opened", "path", initialPath, "error", err)
			}
		})
	}

	a.scheduleUpdate()
	if a.logger != nil {
		a.logger.Info("app started")
	}
	tk.App.Wait()
}

func (a *App) exitHandler() {
	// Closing the main window abandons any open crop.
	a.c.Editor.Cancel()
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.stop != nil {
		a.stop()
	}
	if a.logger != nil {
		completed, failed := a.c.History.Values()
		a.logger.Info("app exiting", "completed", completed, "failed", failed)
	}
	tk.Destroy(tk.App)
}

func (a *App) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = tk.TclAfter(tick, a.c.Loop.Tick)
}

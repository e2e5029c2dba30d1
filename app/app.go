package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	title   string
	width   int
	height  int
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	afterID string

	c *AppContainer
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.Default()
	}
	a := &app{title: title, width: width, height: height, cfg: cfg, cfgPath: cfgPath, logger: logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the window and blocks in the Tk event loop until the window is destroyed.
func (a *app) Start() {
	theme.InitStyles()
	a.c = BuildContainer(a.cfg, a.cfgPath, a.logger)
	defer a.c.Close()
	a.c.Wire(a.exitHandler, a.scheduleUpdate)
	a.c.Log.Logf("Press Start to select an area and begin recording.")
	a.logger.Info("gui started", "config", a.cfgPath)

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	if a.c != nil && !a.c.RecordPresenter.CanClose() {
		a.c.Log.Logf("Processing is in progress")
		return
	}
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.cfg != nil {
		if err := a.cfg.Save(a.cfgPath); err != nil {
			a.logger.Error("config save failed", "error", err)
		}
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}

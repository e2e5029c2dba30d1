package app

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/domain/assemble"
	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/domain/session"
	"github.com/soocke/snapgif/progress"
	"github.com/soocke/snapgif/ui/model"
	"github.com/soocke/snapgif/ui/presenter"
	"github.com/soocke/snapgif/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	CfgPath  string
	Logger   *slog.Logger
	Log      *model.LogModel
	State    *model.RecordingModel
	Session  *model.SessionModel
	Grabber  *capture.ScreenGrabber
	Recorder *capture.Recorder
	Runner   *session.Runner
	RootView *view.RootView
	Overlay  view.SelectionOverlay

	// Presenters
	RecordPresenter  *presenter.RecordPresenter
	SessionPresenter *presenter.SessionPresenter
	LogPresenter     *presenter.LogPresenter
	PreviewPresenter *presenter.PreviewPresenter
	Loop             *presenter.Loop

	asmOpts assemble.Options // snapshot taken when a session starts
}

// BuildContainer constructs the domain services and models. Views and
// presenters are wired by Wire once the Tk root exists.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Log = model.NewLogModel(0)
	c.State = &model.RecordingModel{}
	c.Session = model.NewSessionModel()
	sink := progress.Multi{c.Log, progress.Slog{Logger: logger}}
	c.Grabber = capture.NewScreenGrabber()
	c.Recorder = capture.NewRecorder(c.Grabber, sink, logger)
	c.asmOpts = assemble.Options{OutputDir: cfg.OutputDir, Dither: cfg.Dither}
	c.Runner = session.NewRunner(c.Recorder, session.AssemblerFunc(func(samples []capture.Sample, frame time.Duration) (string, error) {
		return assemble.New(c.asmOpts, sink, logger).Assemble(samples, frame)
	}), sink, logger)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Overlay = view.NewSelectionOverlay(cfg, logger)
	return c
}

// Wire builds the views and connects presenters. schedule re-arms the tick.
func (c *AppContainer) Wire(onExit func(), schedule func()) {
	c.RecordPresenter = presenter.NewRecordPresenter(c.State, c.Runner, c.Overlay, c.RootView, c.params, c.Log, c.Logger)
	c.RecordPresenter.OnRegion = c.saveSelection
	c.RootView.Build(c.Log, c.RecordPresenter.Start, c.RecordPresenter.Finish, onExit)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.RecordPresenter, c.RootView)
	c.LogPresenter = presenter.NewLogPresenter(c.Log, c.RootView, view.LogVisibleLines)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Recorder, c.RootView)
	c.Loop = presenter.NewLoop(c.RecordPresenter, c.SessionPresenter, c.LogPresenter, c.PreviewPresenter, schedule)
}

// params reads the current settings for the next session. It runs on the UI
// thread before the session goroutine starts.
func (c *AppContainer) params() capture.Params {
	c.Config.FPS = c.RootView.FPS()
	p := capture.Params{FPS: c.Config.FPS, MaxDuration: c.Config.MaxDuration()}
	c.Session.SetLimit(p.MaxDuration)
	c.asmOpts = assemble.Options{OutputDir: c.Config.OutputDir, Dither: c.Config.Dither}
	return p
}

func (c *AppContainer) saveSelection(r image.Rectangle) {
	c.Config.SetSelection(r)
	if err := c.Config.Save(c.CfgPath); err != nil {
		c.Logger.Error("config save failed", "error", err)
	}
}

// Close releases the screen grabber.
func (c *AppContainer) Close() {
	if c.Grabber != nil {
		if err := c.Grabber.Close(); err != nil {
			c.Logger.Warn("grabber close", "error", err)
		}
	}
}

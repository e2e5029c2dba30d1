package view

import (
	"image"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/progress"
	"github.com/soocke/snapgif/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	CapturePrev CapturePreview
	Log         LogPanel

	// Widgets
	FPSSelect *TComboboxWidget
	startBtn  *TButtonWidget
	finishBtn *TButtonWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. log receives settings messages from the config panel.
// Handlers are invoked on user actions.
func (rv *RootView) Build(log progress.Sink, onStart func(), onFinish func(), onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: session clock, fps selector, buttons frame
	rv.Session = NewSessionStats(nil, 0, 0)

	fpsValues := make([]string, 0, capture.MaxFPS-capture.MinFPS+1)
	for f := capture.MinFPS; f <= capture.MaxFPS; f++ {
		fpsValues = append(fpsValues, strconv.Itoa(f)+" fps")
	}
	rv.FPSSelect = TCombobox(Values(fpsValues), Width(8), State("readonly"))
	Grid(rv.FPSSelect, Row(0), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	fps := capture.MinFPS
	if rv.cfg != nil {
		fps = rv.cfg.FPS
	}
	rv.FPSSelect.Current(fps - capture.MinFPS)
	Bind(rv.FPSSelect, "<<ComboboxSelected>>", Command(func() {
		if rv.cfg != nil {
			rv.cfg.FPS = rv.FPS()
		}
	}))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.startBtn = TButton(Txt("Start"), Command(onStart), Style(theme.StyleRecordButton))
	Grid(rv.startBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.finishBtn = TButton(Txt("Finish"), Command(onFinish), Style(theme.StyleFinishButton))
	Grid(rv.finishBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Settings rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, log, rv.logger)
	row := rv.ConfigPanel.Build(1)

	rv.Log = NewLogPanel(row)
	rv.CapturePrev = NewCapturePreview(row + 1)
	rv.SetRecording(false)
}

// FPS returns the selected frame rate.
func (rv *RootView) FPS() int {
	if rv == nil || rv.FPSSelect == nil {
		return capture.MinFPS
	}
	idx, err := strconv.Atoi(rv.FPSSelect.Current(nil))
	if err != nil || idx < 0 {
		if rv.logger != nil {
			rv.logger.Error("fps selection parse error", "error", err)
		}
		return capture.MinFPS
	}
	return min(capture.MinFPS+idx, capture.MaxFPS)
}

// SetRecording toggles widgets between idle and recording layouts.
func (rv *RootView) SetRecording(recording bool) {
	if rv == nil {
		return
	}
	idle, busy := "normal", "disabled"
	if recording {
		idle, busy = "disabled", "normal"
	}
	if rv.startBtn != nil {
		rv.startBtn.Configure(State(idle))
	}
	if rv.finishBtn != nil {
		rv.finishBtn.Configure(State(busy))
	}
	if rv.FPSSelect != nil {
		sel := "readonly"
		if recording {
			sel = "disabled"
		}
		rv.FPSSelect.Configure(State(sel))
	}
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!recording)
	}
}

// SetFinishEnabled toggles the Finish button.
func (rv *RootView) SetFinishEnabled(enabled bool) {
	if rv == nil || rv.finishBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	rv.finishBtn.Configure(State(state))
}

// SetSession updates the session clock.
func (rv *RootView) SetSession(elapsed, limit time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(elapsed, limit)
	}
}

// SetLines proxies to the log panel.
func (rv *RootView) SetLines(lines []string) {
	if rv != nil && rv.Log != nil {
		rv.Log.SetLines(lines)
	}
}

// UpdateCapture proxies to underlying capture preview view.
func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

// PreviewReset clears the capture preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

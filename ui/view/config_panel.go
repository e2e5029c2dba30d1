package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/progress"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the settings form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	log      progress.Sink
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by config field id
}

// NewConfigPanel creates the view bound to cfg. Apply results are reported to log.
func NewConfigPanel(cfg *config.Config, cfgPath string, log progress.Sink, logger *slog.Logger) ConfigPanel {
	if log == nil {
		log = progress.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &configPanel{cfg: cfg, cfgPath: cfgPath, log: log, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	values := v.cfg.FieldValues()
	row = startRow
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(40))
		Grid(w, Row(row), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", values[id])
		v.widgets[id] = w
		row++
	}
	makeRow(config.FieldMaxSeconds, "Max Seconds")
	makeRow(config.FieldOutputDir, "Output Dir (empty = Desktop)")
	makeRow(config.FieldDither, "Dither (true/false)")
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
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
	return strings.Join(w.Get("1.0", END), "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = v.text(w)
	}
	cfg, err := v.cfg.WithFields(values)
	if err != nil {
		v.log.Logf("Settings not applied: %v", err)
		return
	}
	*v.cfg = *cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		v.logger.Error("config save failed", "error", err)
		return
	}
	v.logger.Info("config saved", "path", v.cfgPath)
	v.log.Logf("Settings saved")
}

package view

import (
	"image"
	"log/slog"
	"runtime"

	"github.com/soocke/snapgif/config"
	"github.com/soocke/snapgif/domain/capture"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

const overlayKey = "#008080"

// SelectionOverlay is a resizable, see-through toplevel the user moves over
// the area to record. Its window geometry becomes the recording region.
type SelectionOverlay interface {
	Select(onConfirm func(image.Rectangle), onCancel func())
}

type selectionOverlay struct {
	logger    *slog.Logger
	cfg       *config.Config
	win       *ToplevelWidget
	onConfirm func(image.Rectangle)
	onCancel  func()
}

// NewSelectionOverlay creates a new overlay manager. The saved selection in
// cfg seeds the initial window geometry.
func NewSelectionOverlay(cfg *config.Config, logger *slog.Logger) SelectionOverlay {
	if logger == nil {
		logger = slog.Default()
	}
	return &selectionOverlay{logger: logger, cfg: cfg}
}

func (v *selectionOverlay) Select(onConfirm func(image.Rectangle), onCancel func()) {
	v.onConfirm, v.onCancel = onConfirm, onCancel
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	screen, err := capture.ScreenBounds()
	if err != nil || screen.Empty() {
		v.logger.Warn("screen bounds unavailable", "error", err)
		screen = image.Rect(0, 0, 1920, 1080)
	}
	initial := config.DefaultConfig().InitialSelection(screen)
	if v.cfg != nil {
		initial = v.cfg.InitialSelection(screen)
	}

	win := App.Toplevel(Borderwidth(2), Background(overlayKey))
	win.WmTitle("Select recording area")
	v.win = win
	WmGeometry(win.Window, config.FormatGeometry(initial))
	WmAttributes(win.Window, "-topmost", 1)
	if runtime.GOOS == "windows" {
		WmAttributes(win.Window, "-toolwindow", true)
		WmAttributes(win.Window, "-transparentcolor", overlayKey)
	} else {
		WmAttributes(win.Window, "-alpha", 0.35)
	}
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.cancel)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background(overlayKey))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Confirm [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

func (v *selectionOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := config.ParseGeometry(geom)
	if !ok {
		v.logger.Warn("unparsable overlay geometry", "geometry", geom)
		v.cancel()
		return
	}
	cb := v.onConfirm
	v.destroy()
	if cb != nil {
		cb(rect)
	}
}

func (v *selectionOverlay) cancel() {
	cb := v.onCancel
	v.destroy()
	if cb != nil {
		cb()
	}
}

func (v *selectionOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
	v.onConfirm, v.onCancel = nil, nil
}

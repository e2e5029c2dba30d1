package theme

// Palette and ttk styles for the recorder window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorPrimary   = "#2563eb" // start
	ColorDanger    = "#dc2626" // finish / recording
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("record.TButton") etc.
const (
	StyleRecordButton = "record.TButton"
	StyleFinishButton = "finish.TButton"
	StyleClockLabel   = "clock.TLabel"
)

// InitStyles activates the base theme and configures the semantic styles.
// Must run on the Tk thread before widgets are created.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StyleRecordButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleFinishButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleClockLabel,
		Foreground(ColorText),
		Padding("2p 1p"),
	)
}

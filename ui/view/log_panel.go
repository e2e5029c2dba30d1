package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// LogVisibleLines is the number of log lines the panel shows.
const LogVisibleLines = 10

// LogPanel is a read-only text area showing the tail of the session log.
type LogPanel interface {
	SetLines(lines []string)
}

type logPanel struct {
	text *TextWidget
}

// NewLogPanel creates the panel spanning columns 0-3 of row.
func NewLogPanel(row int) LogPanel {
	w := Text(Height(LogVisibleLines), Width(72), Borderwidth(1), Relief("sunken"))
	Grid(w, Row(row), Column(0), Columnspan(4), Sticky("nsew"), Padx("0.4m"), Pady("0.3m"))
	w.Configure(State("disabled"))
	return &logPanel{text: w}
}

// SetLines replaces the panel content. The widget is only writable while updating.
func (p *logPanel) SetLines(lines []string) {
	if p == nil || p.text == nil {
		return
	}
	p.text.Configure(State("normal"))
	p.text.Delete("1.0", END)
	p.text.Insert("1.0", strings.Join(lines, "\n"))
	p.text.Configure(State("disabled"))
}

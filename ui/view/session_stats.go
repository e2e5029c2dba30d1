package view

import (
	"fmt"
	"time"

	"github.com/soocke/snapgif/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the session clock, e.g. "Recording 00:04 / 00:30".
type SessionStats interface {
	SetSession(elapsed, limit time.Duration)
}

type sessionStats struct {
	lbl *TLabelWidget
}

// NewSessionStats creates the clock label at (row, col).
// If parent is nil, the label is positioned relative to the App root.
func NewSessionStats(parent *FrameWidget, row, col int) SessionStats {
	s := &sessionStats{lbl: TLabel(Width(24), Anchor("w"), Style(theme.StyleClockLabel))}
	if parent != nil {
		Grid(s.lbl, In(parent), Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.lbl, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	}
	s.SetSession(0, 0)
	return s
}

func (s *sessionStats) SetSession(elapsed, limit time.Duration) {
	if s == nil || s.lbl == nil {
		return
	}
	s.lbl.Configure(Txt(fmt.Sprintf("Recording %s / %s", mmss(elapsed), mmss(limit))))
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

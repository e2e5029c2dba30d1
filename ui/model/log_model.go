package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/soocke/snapgif/progress"
)

const defaultMaxLines = 500

// LogModel is the append-only line buffer behind the log panel. It implements
// progress.Sink: the recording goroutine writes, the UI tick reads. A progress
// step replaces the previous line when that line is a bar of the same stage.
type LogModel struct {
	mu       sync.Mutex
	lines    []string
	barStage string // stage of the bar occupying the last line, if any
	version  uint64
	maxLines int
	bar      progress.Bar
	track    progress.Tracker
}

var _ progress.Sink = (*LogModel)(nil)

// NewLogModel returns a model keeping at most maxLines lines (<=0 picks a default).
func NewLogModel(maxLines int) *LogModel {
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	return &LogModel{maxLines: maxLines, bar: progress.DefaultBar}
}

func (m *LogModel) Logf(format string, args ...any) {
	if m == nil {
		return
	}
	line := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.barStage = ""
	m.appendLocked(line)
}

func (m *LogModel) Step(stage string, done, total int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	line := m.bar.Render(stage, done, total, m.track.Elapsed(stage, done))
	if m.barStage == stage && len(m.lines) > 0 {
		m.lines[len(m.lines)-1] = line
		m.version++
		return
	}
	m.barStage = stage
	m.appendLocked(line)
}

func (m *LogModel) appendLocked(line string) {
	m.lines = append(m.lines, line)
	if over := len(m.lines) - m.maxLines; over > 0 {
		m.lines = append(m.lines[:0], m.lines[over:]...)
	}
	m.version++
}

// Version increases on every change; readers compare it to skip redraws.
func (m *LogModel) Version() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Tail returns a copy of the last n lines (all lines when n <= 0) and the version it reflects.
func (m *LogModel) Tail(n int) ([]string, uint64) {
	if m == nil {
		return nil, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	start := 0
	if n > 0 && len(m.lines) > n {
		start = len(m.lines) - n
	}
	out := make([]string, len(m.lines)-start)
	copy(out, m.lines[start:])
	return out, m.version
}

package model

import (
	"strings"
	"sync"
	"testing"
)

func TestLogModel_ProgressReplacesLastLine(t *testing.T) {
	m := NewLogModel(0)
	m.Logf("Start recording %d seconds", 2)
	for i := 1; i <= 4; i++ {
		m.Step("Taking screenshots", i, 4)
	}
	m.Logf("Creating GIF file...")
	m.Step("Drawing cursor", 1, 4)
	m.Step("Drawing cursor", 2, 4)

	lines, _ := m.Tail(0)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[1], "Taking screenshots") || !strings.Contains(lines[1], "4/4") {
		t.Fatalf("bar line should show final step, got %q", lines[1])
	}
	if lines[2] != "Creating GIF file..." {
		t.Fatalf("unexpected line %q", lines[2])
	}
	if !strings.Contains(lines[3], "2/4") {
		t.Fatalf("second bar should show 2/4, got %q", lines[3])
	}
}

func TestLogModel_BarAfterTextStartsNewLine(t *testing.T) {
	m := NewLogModel(0)
	m.Step("Taking screenshots", 1, 2)
	m.Logf("Request to stop recording")
	m.Step("Taking screenshots", 2, 2)
	lines, _ := m.Tail(0)
	if len(lines) != 3 {
		t.Fatalf("text between bars must break replacement, got %q", lines)
	}
}

func TestLogModel_BoundedAndTail(t *testing.T) {
	m := NewLogModel(3)
	for i := 0; i < 5; i++ {
		m.Logf("line %d", i)
	}
	all, v := m.Tail(0)
	if len(all) != 3 || all[0] != "line 2" || all[2] != "line 4" {
		t.Fatalf("unexpected bounded lines %q", all)
	}
	if v != m.Version() || v != 5 {
		t.Fatalf("version mismatch: tail=%d model=%d", v, m.Version())
	}
	last, _ := m.Tail(1)
	if len(last) != 1 || last[0] != "line 4" {
		t.Fatalf("tail(1) = %q", last)
	}
}

func TestLogModel_ConcurrentWriters(t *testing.T) {
	m := NewLogModel(0)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				m.Logf("x")
			}
		}()
	}
	wg.Wait()
	if lines, _ := m.Tail(0); len(lines) != 200 {
		t.Fatalf("expected 200 lines, got %d", len(lines))
	}
}

func TestRecordingModel_Transitions(t *testing.T) {
	var m RecordingModel
	if m.State() != StateIdle {
		t.Fatalf("zero value should be idle")
	}
	if m.Transition(StateRecording, StateStopping) {
		t.Fatalf("transition from wrong state must fail")
	}
	if !m.Transition(StateIdle, StateSelecting) || !m.Transition(StateSelecting, StateRecording) {
		t.Fatalf("expected idle->selecting->recording")
	}
	if !m.Recording() {
		t.Fatalf("recording state should report Recording")
	}
	m.Reset()
	if m.State() != StateIdle || m.Recording() {
		t.Fatalf("reset should return to idle, got %v", m.State())
	}
}

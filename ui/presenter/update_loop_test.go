package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/domain/session"
	"github.com/soocke/snapgif/ui/model"
)

type mockSessionView struct {
	elapsed, limit time.Duration
	calls          int
}

func (v *mockSessionView) SetSession(e, l time.Duration) { v.calls++; v.elapsed, v.limit = e, l }

type mockLogView struct {
	lines []string
	calls int
}

func (v *mockLogView) SetLines(lines []string) { v.calls++; v.lines = lines }

type mockFrames struct {
	snap capture.FrameSnapshot
	ok   bool
}

func (f *mockFrames) LatestFrame() (capture.FrameSnapshot, bool) { return f.snap, f.ok }

type mockPreview struct{ updates int }

func (v *mockPreview) UpdateCapture(image.Image) { v.updates++ }

func TestLoop_TickDrivesPresenters(t *testing.T) {
	rp, r, sel, _, _ := newTestPresenter()
	sm := model.NewSessionModel()
	sm.SetLimit(30 * time.Second)
	sv := &mockSessionView{}
	lm := model.NewLogModel(0)
	lv := &mockLogView{}
	frames := &mockFrames{}
	pv := &mockPreview{}
	scheduled := 0
	base := time.Unix(100, 0)
	now := base

	l := NewLoop(rp,
		NewSessionPresenter(sm, rp, sv),
		NewLogPresenter(lm, lv, 5),
		NewPreviewPresenter(frames, pv),
		func() { scheduled++ })
	l.Now = func() time.Time { return now }

	rp.Start()
	sel.onConfirm(image.Rect(0, 0, 10, 10))
	lm.Logf("Start recording 30 seconds")
	l.Tick()
	now = base.Add(4 * time.Second)
	frames.snap = capture.FrameSnapshot{Sample: capture.Sample{Image: image.NewRGBA(image.Rect(0, 0, 10, 10)), Sequence: 1, CapturedAt: now}}
	frames.ok = true
	l.Tick()
	l.Tick() // same frame, same log version

	if sv.elapsed != 4*time.Second || sv.limit != 30*time.Second {
		t.Fatalf("session view got %v/%v", sv.elapsed, sv.limit)
	}
	if lv.calls != 1 || len(lv.lines) != 1 {
		t.Fatalf("log view should redraw once, calls=%d lines=%q", lv.calls, lv.lines)
	}
	if pv.updates != 1 {
		t.Fatalf("preview should update once per frame, got %d", pv.updates)
	}
	if scheduled != 3 {
		t.Fatalf("expected 3 schedules, got %d", scheduled)
	}

	r.finish(session.Result{Path: "out.gif"})
	now = base.Add(5 * time.Second)
	l.Tick()
	if rp.Recording() {
		t.Fatalf("loop should drain the finished session")
	}
	if sv.elapsed != 5*time.Second {
		t.Fatalf("final elapsed should freeze at 5s, got %v", sv.elapsed)
	}
}

func TestPreviewPresenter_NewSessionSameSequence(t *testing.T) {
	frames := &mockFrames{ok: true}
	pv := &mockPreview{}
	p := NewPreviewPresenter(frames, pv)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	frames.snap = capture.FrameSnapshot{Sample: capture.Sample{Image: img, Sequence: 1, CapturedAt: time.Unix(1, 0)}}
	if !p.Refresh() || p.Refresh() {
		t.Fatalf("first refresh should update, second should not")
	}
	frames.snap = capture.FrameSnapshot{Sample: capture.Sample{Image: img, Sequence: 1, CapturedAt: time.Unix(9, 0)}}
	if !p.Refresh() {
		t.Fatalf("a restarted sequence with a new capture time must update")
	}
}

func TestLoop_NilSafe(t *testing.T) {
	var l *Loop
	l.Tick()
	(&Loop{}).Tick()
}

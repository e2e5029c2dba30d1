package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// fakeClock advances only when slept on or when a grab reports a cost.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Sleep(d time.Duration)   { c.t = c.t.Add(d) }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeGrabber struct {
	clock   *fakeClock
	cost    time.Duration
	cursor  image.Point
	failOn  int // 1-based grab call that fails; 0 never
	onGrab  func(call int)
	grabs   int
	grabbed []time.Time
}

func (g *fakeGrabber) Grab(r image.Rectangle) (*image.RGBA, error) {
	g.grabs++
	if g.onGrab != nil {
		g.onGrab(g.grabs)
	}
	if g.failOn > 0 && g.grabs == g.failOn {
		return nil, errors.New("no display")
	}
	if g.clock != nil {
		g.grabbed = append(g.grabbed, g.clock.Now())
		g.clock.advance(g.cost)
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for i := range img.Pix {
		img.Pix[i] = 0x40
	}
	img.SetRGBA(0, 0, color.RGBA{A: 0xFF, G: uint8(g.grabs)})
	return img, nil
}

func (g *fakeGrabber) CursorPosition() (image.Point, error) { return g.cursor, nil }
func (g *fakeGrabber) Close() error                         { return nil }

func newTestRecorder(g *fakeGrabber, clock *fakeClock) *Recorder {
	return NewRecorder(g, nil, nil, WithClock(clock.Now, clock.Sleep))
}

func TestRecorder_SampleCountMatchesCeiling(t *testing.T) {
	durations := []time.Duration{time.Second, 2 * time.Second, 3500 * time.Millisecond}
	for fps := MinFPS; fps <= MaxFPS; fps++ {
		for _, d := range durations {
			clock := &fakeClock{t: time.Unix(0, 0)}
			g := &fakeGrabber{clock: clock}
			rec := newTestRecorder(g, clock)
			samples, err := rec.Run(image.Rect(0, 0, 10, 10), Params{FPS: fps, MaxDuration: d}, NewStopFlag())
			if err != nil {
				t.Fatalf("fps=%d d=%v: unexpected error %v", fps, d, err)
			}
			want := int(d.Seconds() * float64(fps))
			if len(samples) != want {
				t.Fatalf("fps=%d d=%v: expected %d samples got %d", fps, d, want, len(samples))
			}
			if len(samples) < 1 {
				t.Fatalf("fps=%d d=%v: expected at least one sample", fps, d)
			}
		}
	}
}

func TestRecorder_CadenceHoldsInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	g := &fakeGrabber{clock: clock, cost: 120 * time.Millisecond}
	rec := newTestRecorder(g, clock)
	params := Params{FPS: 2, MaxDuration: 2 * time.Second}
	samples, err := rec.Run(image.Rect(0, 0, 4, 4), params, NewStopFlag())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples got %d", len(samples))
	}
	iv := params.Interval()
	for i := 1; i < len(g.grabbed); i++ {
		gap := g.grabbed[i].Sub(g.grabbed[i-1])
		if gap < iv || gap > iv+iv/10 {
			t.Fatalf("gap %d = %v outside [%v, %v]", i, gap, iv, iv+iv/10)
		}
	}
	for i, s := range samples {
		if s.Sequence != uint64(i+1) {
			t.Fatalf("sample %d has sequence %d", i, s.Sequence)
		}
		if i > 0 && !s.CapturedAt.After(samples[i-1].CapturedAt) {
			t.Fatalf("samples out of chronological order at %d", i)
		}
	}
}

func TestRecorder_SlowCaptureNeverDropsFrames(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := &fakeGrabber{clock: clock, cost: 700 * time.Millisecond}
	rec := newTestRecorder(g, clock)
	samples, err := rec.Run(image.Rect(0, 0, 4, 4), Params{FPS: 2, MaxDuration: 2 * time.Second}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples despite slow capture, got %d", len(samples))
	}
	for i := 1; i < len(g.grabbed); i++ {
		if gap := g.grabbed[i].Sub(g.grabbed[i-1]); gap != 700*time.Millisecond {
			t.Fatalf("expected gap equal to capture cost, got %v", gap)
		}
	}
	st := rec.Stats()
	if st.Overruns != 4 || st.MaxCapture != 700*time.Millisecond || st.Samples != 4 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestRecorder_StopBeforeFirstIteration(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := &fakeGrabber{clock: clock}
	rec := newTestRecorder(g, clock)
	stop := NewStopFlag()
	stop.Request()
	samples, err := rec.Run(image.Rect(0, 0, 4, 4), Params{FPS: 3, MaxDuration: 30 * time.Second}, stop)
	if err != nil {
		t.Fatalf("stop must not be an error: %v", err)
	}
	if len(samples) != 0 || g.grabs != 0 {
		t.Fatalf("expected no samples and no grabs, got %d samples %d grabs", len(samples), g.grabs)
	}
	if !rec.Stats().Stopped {
		t.Fatalf("stats should report the stop")
	}
}

func TestRecorder_StopKeepsPartialSamples(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	stop := NewStopFlag()
	g := &fakeGrabber{clock: clock, onGrab: func(call int) {
		if call == 2 {
			stop.Request()
		}
	}}
	rec := newTestRecorder(g, clock)
	samples, err := rec.Run(image.Rect(0, 0, 4, 4), Params{FPS: 5, MaxDuration: 10 * time.Second}, stop)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// The flag is observed at the next iteration boundary, never mid-sample.
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
}

func TestRecorder_CaptureFailureAborts(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := &fakeGrabber{clock: clock, failOn: 3}
	rec := newTestRecorder(g, clock)
	samples, err := rec.Run(image.Rect(0, 0, 4, 4), Params{FPS: 2, MaxDuration: 5 * time.Second}, nil)
	if !errors.Is(err, ErrCaptureFailed) {
		t.Fatalf("expected ErrCaptureFailed, got %v", err)
	}
	if samples != nil {
		t.Fatalf("expected no samples on failure, got %d", len(samples))
	}
	if g.grabs != 3 {
		t.Fatalf("failure must not be retried, grabs=%d", g.grabs)
	}
}

func TestRecorder_CursorRelativeToRegion(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := &fakeGrabber{clock: clock, cursor: image.Pt(90, 60)}
	rec := newTestRecorder(g, clock)
	samples, err := rec.Run(image.Rect(100, 50, 140, 90), Params{FPS: 1, MaxDuration: time.Second}, nil)
	if err != nil || len(samples) != 1 {
		t.Fatalf("run: err=%v samples=%d", err, len(samples))
	}
	if got := samples[0].Cursor; got != image.Pt(-10, 10) {
		t.Fatalf("expected cursor (-10,10), got %v", got)
	}
	if b := samples[0].Image.Bounds(); b != image.Rect(0, 0, 40, 40) {
		t.Fatalf("unexpected image bounds %v", b)
	}
	snap, ok := rec.LatestFrame()
	if !ok || snap.Sequence != 1 || snap.Planned != 1 {
		t.Fatalf("unexpected latest frame ok=%v snap=%+v", ok, snap)
	}
}

func TestRecorder_RejectsInvalidInput(t *testing.T) {
	rec := NewRecorder(&fakeGrabber{}, nil, nil)
	cases := []struct {
		name   string
		region image.Rectangle
		params Params
	}{
		{"fps zero", image.Rect(0, 0, 1, 1), Params{FPS: 0, MaxDuration: time.Second}},
		{"fps ten", image.Rect(0, 0, 1, 1), Params{FPS: 10, MaxDuration: time.Second}},
		{"no duration", image.Rect(0, 0, 1, 1), Params{FPS: 3}},
		{"shorter than one interval", image.Rect(0, 0, 1, 1), Params{FPS: 1, MaxDuration: 300 * time.Millisecond}},
		{"negative region", image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(1, 1)}, Params{FPS: 3, MaxDuration: time.Second}},
	}
	for _, tc := range cases {
		if _, err := rec.Run(tc.region, tc.params, nil); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%s: expected ErrInvalidParams, got %v", tc.name, err)
		}
	}
}

func TestScreenGrabber_ZeroAreaRegion(t *testing.T) {
	g := &ScreenGrabber{}
	img, err := g.Grab(image.Rect(10, 10, 10, 30))
	if err != nil {
		t.Fatalf("zero-area region must not fail: %v", err)
	}
	if img.Bounds().Dx() != 0 || img.Bounds().Dy() != 20 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestStopFlag_OneShot(t *testing.T) {
	var f StopFlag
	if f.Requested() {
		t.Fatalf("zero value must not be requested")
	}
	f.Request()
	f.Request()
	if !f.Requested() {
		t.Fatalf("expected requested after Request")
	}
	var nilFlag *StopFlag
	nilFlag.Request()
	if nilFlag.Requested() {
		t.Fatalf("nil flag is never requested")
	}
}

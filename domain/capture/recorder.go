package capture

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/snapgif/progress"
)

// StageTakingScreenshots labels the recorder's progress steps.
const StageTakingScreenshots = "Taking screenshots"

// Recorder samples a fixed screen region at a steady cadence. A Recorder runs
// one session at a time; callers serialize Run.
type Recorder struct {
	grabber Grabber
	sink    progress.Sink
	logger  *slog.Logger
	now     func() time.Time
	sleep   func(time.Duration)

	latest atomic.Pointer[FrameSnapshot]
	stats  atomic.Pointer[RecordStats]
}

// Option customises a Recorder.
type Option func(*Recorder)

// WithClock replaces the wall clock and sleep used for cadence control.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// NewRecorder constructs a recorder reading from g and reporting to sink.
// A nil sink discards progress; a nil logger disables logging.
func NewRecorder(g Grabber, sink progress.Sink, logger *slog.Logger, opts ...Option) *Recorder {
	if sink == nil {
		sink = progress.Discard
	}
	r := &Recorder{grabber: g, sink: sink, logger: logger, now: time.Now, sleep: time.Sleep}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run records region until params.MaxSamples() samples are taken or stop is
// requested, whichever comes first. The stop flag is checked once at the top
// of every iteration. A stop never discards what was collected; a capture
// failure aborts the run and returns an error wrapping ErrCaptureFailed.
func (r *Recorder) Run(region image.Rectangle, params Params, stop *StopFlag) ([]Sample, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRegion(region); err != nil {
		return nil, err
	}
	if r.grabber == nil {
		return nil, fmt.Errorf("%w: no grabber configured", ErrCaptureFailed)
	}

	interval := params.Interval()
	planned := params.MaxSamples()
	samples := make([]Sample, 0, planned)
	st := RecordStats{Planned: planned}
	var captureTotal time.Duration
	begin := r.now()
	r.latest.Store(nil)

	defer func() {
		st.Samples = len(samples)
		st.Elapsed = r.now().Sub(begin)
		if st.Samples > 0 {
			st.AvgCapture = captureTotal / time.Duration(st.Samples)
		}
		r.stats.Store(&st)
		r.logStats(st)
	}()

	for i := 0; i < planned; i++ {
		if stop.Requested() {
			st.Stopped = true
			break
		}
		start := r.now()
		s, err := r.sample(region, uint64(i+1))
		if err != nil {
			samples = samples[:0]
			return nil, err
		}
		samples = append(samples, s)
		r.latest.Store(&FrameSnapshot{Sample: s, Planned: planned})

		cost := r.now().Sub(start)
		captureTotal += cost
		if cost > st.MaxCapture {
			st.MaxCapture = cost
		}
		if cost > interval {
			st.Overruns++
		}
		r.sink.Step(StageTakingScreenshots, i+1, planned)

		// Capture cost eats into the interval; a slow capture is never compensated.
		elapsed := r.now().Sub(start)
		for elapsed < interval {
			r.sleep(interval / 10)
			elapsed = r.now().Sub(start)
		}
	}
	return samples, nil
}

func (r *Recorder) sample(region image.Rectangle, seq uint64) (Sample, error) {
	pos, err := r.grabber.CursorPosition()
	if err != nil {
		return Sample{}, fmt.Errorf("%w: cursor: %w", ErrCaptureFailed, err)
	}
	img, err := r.grabber.Grab(region)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: region %v: %w", ErrCaptureFailed, region, err)
	}
	return Sample{
		Image:      img,
		Cursor:     pos.Sub(region.Min),
		CapturedAt: r.now(),
		Sequence:   seq,
	}, nil
}

// LatestFrame returns the most recent sample of the current or last run.
func (r *Recorder) LatestFrame() (FrameSnapshot, bool) {
	snap := r.latest.Load()
	if snap == nil {
		return FrameSnapshot{}, false
	}
	return *snap, true
}

// Stats returns the statistics of the last completed run.
func (r *Recorder) Stats() RecordStats {
	st := r.stats.Load()
	if st == nil {
		return RecordStats{}
	}
	return *st
}

func (r *Recorder) logStats(st RecordStats) {
	if r.logger == nil {
		return
	}
	r.logger.Debug("capture.stats",
		"samples", st.Samples,
		"planned", st.Planned,
		"stopped", st.Stopped,
		"avg_capture", st.AvgCapture,
		"max_capture", st.MaxCapture,
		"overruns", st.Overruns,
		"elapsed", st.Elapsed,
	)
}

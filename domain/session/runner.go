// Package session runs one record-then-assemble unit of work at a time.
package session

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/progress"
)

// ErrBusy is returned by Start while another session is in flight.
var ErrBusy = errors.New("a recording is already in progress")

// ErrPanicked wraps a panic raised while recording or assembling.
var ErrPanicked = errors.New("session panicked")

// Recorder is the capture loop the runner drives.
type Recorder interface {
	Run(region image.Rectangle, params capture.Params, stop *capture.StopFlag) ([]capture.Sample, error)
}

// Assembler turns samples into an output file.
type Assembler interface {
	Assemble(samples []capture.Sample, frameDuration time.Duration) (string, error)
}

// AssemblerFunc adapts a function to the Assembler interface.
type AssemblerFunc func(samples []capture.Sample, frameDuration time.Duration) (string, error)

func (f AssemblerFunc) Assemble(samples []capture.Sample, frameDuration time.Duration) (string, error) {
	return f(samples, frameDuration)
}

// Result is the outcome of one session. Exactly one of Path and Err is set.
type Result struct {
	ID       string
	Path     string
	Samples  int
	Err      error
	Started  time.Time
	Finished time.Time
}

// Runner owns the single-concurrency policy and the stop flag of the
// in-flight session.
type Runner struct {
	rec    Recorder
	asm    Assembler
	sink   progress.Sink
	logger *slog.Logger

	busy atomic.Bool
	stop atomic.Pointer[capture.StopFlag]
}

// NewRunner wires a recorder and an assembler. A nil sink discards progress.
func NewRunner(rec Recorder, asm Assembler, sink progress.Sink, logger *slog.Logger) *Runner {
	if sink == nil {
		sink = progress.Discard
	}
	return &Runner{rec: rec, asm: asm, sink: sink, logger: logger}
}

// Busy reports whether a session is in flight.
func (r *Runner) Busy() bool { return r.busy.Load() }

// Start launches a session on its own goroutine. The returned channel yields
// exactly one Result and is then closed.
func (r *Runner) Start(region image.Rectangle, params capture.Params) (<-chan Result, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	stop := capture.NewStopFlag()
	r.stop.Store(stop)
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		res := func() Result {
			defer func() {
				r.stop.Store(nil)
				r.busy.Store(false)
			}()
			return r.Run(region, params, stop)
		}()
		out <- res
	}()
	return out, nil
}

// Stop requests the in-flight session to finish early. Idempotent; a no-op when idle.
func (r *Runner) Stop() {
	if f := r.stop.Load(); f != nil {
		if !f.Requested() {
			r.sink.Logf("Request to stop recording")
		}
		f.Request()
	}
}

// Run records then assembles synchronously on the calling goroutine.
// Capture errors skip assembly; an early stop assembles whatever was taken.
// A panic in either stage is reported as an error wrapping ErrPanicked.
func (r *Runner) Run(region image.Rectangle, params capture.Params, stop *capture.StopFlag) (res Result) {
	res = Result{ID: uuid.NewString(), Started: time.Now()}
	log := r.logger
	if log != nil {
		log = log.With("session", res.ID)
		log.Info("session start", "region", region, "fps", params.FPS, "max", params.MaxDuration)
	}
	defer func() {
		if p := recover(); p != nil {
			res = r.finish(res, fmt.Errorf("%w: %v", ErrPanicked, p), log)
		}
	}()

	r.sink.Logf("Start recording %d seconds", int(params.MaxDuration/time.Second))
	r.sink.Logf("Use the Finish button to stop recording.")

	samples, err := r.rec.Run(region, params, stop)
	res.Samples = len(samples)
	if err != nil {
		return r.finish(res, err, log)
	}

	r.sink.Logf("Creating GIF file...")
	path, err := r.asm.Assemble(samples, params.Interval())
	if err != nil {
		return r.finish(res, err, log)
	}
	res.Path = path
	r.sink.Logf("Output file: %s", path)
	return r.finish(res, nil, log)
}

func (r *Runner) finish(res Result, err error, log *slog.Logger) Result {
	res.Err = err
	res.Finished = time.Now()
	if err != nil {
		r.sink.Logf("Recording failed: %v", err)
	}
	if log != nil {
		if err != nil {
			log.Error("session failed", "error", err, "samples", res.Samples, "took", res.Finished.Sub(res.Started))
		} else {
			log.Info("session done", "path", res.Path, "samples", res.Samples, "took", res.Finished.Sub(res.Started))
		}
	}
	return res
}

// Package assemble turns recorded samples into a looping animated GIF.
package assemble

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/progress"
)

// StageDrawingCursor labels the per-frame marker progress steps.
const StageDrawingCursor = "Drawing cursor"

// fileTimeLayout gives screenshot_2006-01-02_15.04.05.gif.
const fileTimeLayout = "2006-01-02_15.04.05"

// Options configures an Assembler. Zero values pick the defaults.
type Options struct {
	// OutputDir receives the GIF. Empty means the user's desktop directory.
	OutputDir string
	// Dither enables Floyd-Steinberg error diffusion while palettizing.
	Dither bool
	Marker *Marker
	// Workers bounds parallel palettization. Zero means GOMAXPROCS.
	Workers int
	Now     func() time.Time
}

// Assembler overlays cursor markers and encodes frames in sample order.
type Assembler struct {
	dir     string
	dither  bool
	marker  Marker
	workers int
	now     func() time.Time
	sink    progress.Sink
	logger  *slog.Logger
}

// New returns an Assembler. A nil sink discards progress.
func New(opts Options, sink progress.Sink, logger *slog.Logger) *Assembler {
	a := &Assembler{
		dir:     opts.OutputDir,
		dither:  opts.Dither,
		marker:  DefaultMarker,
		workers: opts.Workers,
		now:     opts.Now,
		sink:    sink,
		logger:  logger,
	}
	if opts.Marker != nil {
		a.marker = *opts.Marker
	}
	if a.workers <= 0 {
		a.workers = runtime.GOMAXPROCS(0)
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.sink == nil {
		a.sink = progress.Discard
	}
	return a
}

// Assemble writes one GIF frame per sample, in order, each shown for
// frameDuration, looping forever. It returns the written file path.
func (a *Assembler) Assemble(samples []capture.Sample, frameDuration time.Duration) (string, error) {
	if len(samples) == 0 {
		return "", ErrEmptyInput
	}
	marked := make([]image.Image, len(samples))
	for i, s := range samples {
		if s.Image == nil {
			return "", fmt.Errorf("%w: sample %d has no image", ErrEncodeFailed, i)
		}
		frame := imaging.Clone(s.Image)
		a.marker.Draw(frame, frame.Bounds().Min.Add(s.Cursor))
		marked[i] = frame
		a.sink.Step(StageDrawingCursor, i+1, len(samples))
	}

	anim := &gif.GIF{
		Image:     a.palettize(marked),
		Delay:     make([]int, len(marked)),
		LoopCount: 0,
	}
	delay := DelayCentiseconds(frameDuration)
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}
	return a.write(anim)
}

func (a *Assembler) palettize(frames []image.Image) []*image.Paletted {
	out := make([]*image.Paletted, len(frames))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, f := range frames {
		i, f := i, f
		g.Go(func() error {
			out[i] = palettize(f, a.dither)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func palettize(src image.Image, dither bool) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	if dither {
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
	} else {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	return dst
}

// write encodes into a temp file next to the target and renames it into place,
// so a failure never leaves a partial GIF behind.
func (a *Assembler) write(anim *gif.GIF) (string, error) {
	dir := a.dir
	if dir == "" {
		dir = DesktopDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	path := filepath.Join(dir, FileName(a.now()))

	tmp, err := os.CreateTemp(dir, ".snapgif-*.gif")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	data, err := withLoopExtension(buf.Bytes())
	if err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	if info, err := os.Stat(path); err == nil {
		a.sink.Logf("Saved %d frames (%s)", len(anim.Image), humanize.Bytes(uint64(info.Size())))
	}
	if a.logger != nil {
		a.logger.Info("gif written", "path", path, "frames", len(anim.Image), "delay_cs", anim.Delay[0])
	}
	return path, nil
}

// DelayCentiseconds converts a frame duration to the GIF delay unit (1/100 s), rounded.
func DelayCentiseconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + 5*time.Millisecond) / (10 * time.Millisecond))
}

// FileName returns the output name for a session finished at t.
func FileName(t time.Time) string {
	return "screenshot_" + t.Format(fileTimeLayout) + ".gif"
}

// DesktopDir returns the user's desktop directory, falling back to the home
// directory and finally the working directory.
func DesktopDir() string {
	if d := xdg.UserDirs.Desktop; d != "" {
		return d
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "."
}

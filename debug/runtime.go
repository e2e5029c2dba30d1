package debug

// Runtime stats logger, started only when config.Debug is true.
// Logs goroutine count, stack and heap usage plus process RSS so that a long
// recording's memory growth (frames are held until assembly) is visible.

import (
	"log/slog"
	"os"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// StartRuntimeLogger launches a ticker that logs runtime and process memory
// stats. The returned func stops it.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		proc, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			logger.Warn("runtime-stats: process handle unavailable", slog.String("err", err.Error()))
		}
		var rssErrLogged bool
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss := uint64(0)
			if proc != nil {
				if mi, err := proc.MemoryInfo(); err == nil {
					rss = mi.RSS
				} else if !rssErrLogged {
					logger.Warn("runtime-stats: memory info failed", slog.String("err", err.Error()))
					rssErrLogged = true
				}
			}
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("rss", rss),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
	return func() { close(done) }
}

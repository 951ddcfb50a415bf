package debug

// Runtime stats logger started only when config.Debug is true. Decoded
// source images can be large, so heap and working-set growth across editing
// sessions is the main thing worth watching.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Stats is one sample of process memory and scheduler state.
type Stats struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapInuse  uint64
	StackInuse uint64
	NumGC      uint32
	RSS        uint64 // 0 when the platform query is unavailable
}

// Snapshot reads the current runtime stats.
func Snapshot() Stats {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Stats{
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		StackInuse: ms.StackInuse,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	}
	if rss, err := workingSet(); err == nil {
		s.RSS = rss
	}
	return s
}

// StartStatsLogger logs a Snapshot every interval until ctx is done.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s := Snapshot()
				logger.Info("runtime-stats",
					slog.Uint64("goroutines", s.Goroutines),
					slog.Uint64("heap_alloc", s.HeapAlloc),
					slog.Uint64("heap_inuse", s.HeapInuse),
					slog.Uint64("stack_inuse", s.StackInuse),
					slog.Uint64("num_gc", uint64(s.NumGC)),
					slog.Uint64("rss", s.RSS),
				)
			}
		}
	}()
}

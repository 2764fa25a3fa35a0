package cli

import (
	"context"
	"log/slog"
	"os"
	"runtime/pprof"
	"sync"
)

//nolint:containedctx
type CPUProfiler struct {
	ctx      context.Context
	cancel   context.CancelFunc
	doneChan chan struct{}
	started  chan struct{}
	once     sync.Once
}

// NewCPUProfiler starts a CPU profile written to path, unless path is empty.
// It returns once the profile is running, so that the measured run is fully
// covered; [CPUProfiler.Stop] finishes the profile.
func NewCPUProfiler(ctx context.Context, path string) *CPUProfiler {
	cprof := &CPUProfiler{}
	cprof.ctx, cprof.cancel = context.WithCancel(ctx)
	cprof.doneChan = make(chan struct{})
	cprof.started = make(chan struct{})

	go cprof.Profile(path)
	<-cprof.started

	return cprof
}

func (cprof *CPUProfiler) Profile(path string) {
	defer close(cprof.doneChan)

	defer cprof.markStarted()

	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("Could not create cpu profile", "err", err)

		return
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		slog.Error("Could not start cpu profile", "err", err)

		return
	}
	defer pprof.StopCPUProfile()

	cprof.markStarted()
	<-cprof.ctx.Done()
}

func (cprof *CPUProfiler) markStarted() {
	cprof.once.Do(func() {
		close(cprof.started)
	})
}

func (cprof *CPUProfiler) Stop() {
	cprof.cancel()
	<-cprof.doneChan
}

package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingLayoutHooks struct {
	mu     sync.Mutex
	starts int
	rounds int
	dones  int
}

func (h *recordingLayoutHooks) OnLayoutStart(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingLayoutHooks) OnResolveRound(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rounds++
}

func (h *recordingLayoutHooks) OnLayoutComplete(context.Context, string, time.Duration, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dones++
}

func TestSetLayoutHooks(t *testing.T) {
	defer Reset()

	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)

	ctx := context.Background()
	Layout().OnLayoutStart(ctx, "flow", 4)
	Layout().OnResolveRound(ctx, 1, 0)
	Layout().OnLayoutComplete(ctx, "flow", time.Millisecond, 0)

	if rec.starts != 1 || rec.rounds != 1 || rec.dones != 1 {
		t.Errorf("hooks not invoked: starts=%d rounds=%d dones=%d", rec.starts, rec.rounds, rec.dones)
	}
}

func TestSetNilHooksKeepsDefaults(t *testing.T) {
	defer Reset()

	SetLayoutHooks(nil)
	SetCacheHooks(nil)

	// Must not panic: no-op defaults are still installed.
	Layout().OnLayoutStart(context.Background(), "cycle", 6)
	Cache().OnCacheMiss(context.Background(), "layout")
}

func TestReset(t *testing.T) {
	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)
	Reset()

	Layout().OnLayoutStart(context.Background(), "flow", 1)
	if rec.starts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLayoutHooks(&recordingLayoutHooks{})
		}()
		go func() {
			defer wg.Done()
			Layout().OnResolveRound(context.Background(), 1, 2)
		}()
	}
	wg.Wait()
}

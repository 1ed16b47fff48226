package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Solver hooks
	s := NoopSolverHooks{}
	s.OnSolveStart(ctx, 12)
	s.OnSolveComplete(ctx, 12, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "alloc")
	c.OnCacheMiss(ctx, "graph")
	c.OnCacheSet(ctx, "alloc", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customSolver := &testSolverHooks{}
	customCache := &testCacheHooks{}
	SetSolverHooks(customSolver)
	SetCacheHooks(customCache)

	if Solver() != customSolver {
		t.Error("Solver() should return the registered hooks")
	}
	if Cache() != customCache {
		t.Error("Cache() should return the registered hooks")
	}

	// Nil registration keeps the current hooks
	SetSolverHooks(nil)
	if Solver() != customSolver {
		t.Error("SetSolverHooks(nil) should be a no-op")
	}

	// Reset restores defaults
	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset() should restore NoopSolverHooks")
	}
}

func TestSolverHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	hooks := &testSolverHooks{}
	SetSolverHooks(hooks)

	ctx := context.Background()
	Solver().OnSolveStart(ctx, 3)
	Solver().OnSolveComplete(ctx, 3, time.Millisecond, nil)

	if hooks.starts != 1 {
		t.Errorf("starts = %d, want 1", hooks.starts)
	}
	if hooks.completes != 1 {
		t.Errorf("completes = %d, want 1", hooks.completes)
	}
	if hooks.lastAgents != 3 {
		t.Errorf("lastAgents = %d, want 3", hooks.lastAgents)
	}
}

type testSolverHooks struct {
	starts     int
	completes  int
	lastAgents int
}

func (h *testSolverHooks) OnSolveStart(_ context.Context, agents int) {
	h.starts++
	h.lastAgents = agents
}

func (h *testSolverHooks) OnSolveComplete(_ context.Context, agents int, _ time.Duration, _ error) {
	h.completes++
	h.lastAgents = agents
}

type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) {
	h.sets++
}

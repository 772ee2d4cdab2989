package generation

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the cancellation cause of a run replaced by a newer one for the same key.
var ErrSuperseded = errors.New("superseded by a newer run")

// Tracker hands out monotonically increasing run numbers per key. Beginning a run
// cancels the previous run for that key.
type Tracker struct {
	mu   sync.Mutex
	seq  uint64
	runs map[string]*Run
}

// Run is one tagged fetch-and-compute cycle.
type Run struct {
	tracker *Tracker
	key     string
	seq     uint64
	cancel  context.CancelCauseFunc
}

func NewTracker() *Tracker {
	return &Tracker{runs: make(map[string]*Run)}
}

// Begin starts a run for key. The returned context is cancelled with ErrSuperseded
// as soon as a newer run for the same key begins.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, *Run) {
	runCtx, cancel := context.WithCancelCause(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	run := &Run{tracker: t, key: key, seq: t.seq, cancel: cancel}
	if prev, ok := t.runs[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	t.runs[key] = run

	return runCtx, run
}

// Seq returns the run's sequence number.
func (r *Run) Seq() uint64 {
	return r.seq
}

// Current reports whether r is still the latest run for its key.
func (r *Run) Current() bool {
	r.tracker.mu.Lock()
	defer r.tracker.mu.Unlock()

	latest, ok := r.tracker.runs[r.key]
	return ok && latest.seq == r.seq
}

// Done releases the run. It must be called once the run's result has been used.
func (r *Run) Done() {
	r.tracker.mu.Lock()
	if latest, ok := r.tracker.runs[r.key]; ok && latest.seq == r.seq {
		delete(r.tracker.runs, r.key)
	}
	r.tracker.mu.Unlock()

	r.cancel(nil)
}

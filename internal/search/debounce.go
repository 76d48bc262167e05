package search

import (
	"context"
	"sync"
	"time"

	"bookfinder/internal/book"
)

// DefaultDebounceWindow is the quiet period after the last criteria
// update before a query is issued.
const DefaultDebounceWindow = 500 * time.Millisecond

// Result is the outcome of one debounced query. When Err is non-nil,
// Books is empty so consumers can render the safe "no results" default.
type Result struct {
	Seq      uint64
	Criteria Criteria
	Books    []book.Book
	Err      error
}

// Debouncer coalesces rapid criteria updates into single queries and
// guarantees that only the most recently issued query's outcome reaches
// the apply callback: each scheduled query is stamped with an increasing
// sequence number, and completions that are no longer the latest are
// discarded. This keeps a slow, stale response from overwriting a newer
// result set.
type Debouncer struct {
	svc    *Service
	window time.Duration
	apply  func(Result)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer wires svc to apply. The apply callback is invoked with
// the internal lock held; it must not call Update.
func NewDebouncer(svc *Service, window time.Duration, apply func(Result)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{svc: svc, window: window, apply: apply}
}

// Update schedules a query for c after the quiet window, cancelling any
// previously pending trigger.
func (d *Debouncer) Update(ctx context.Context, c Criteria) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() {
		d.run(ctx, seq, c)
	})
}

// Stop cancels any pending trigger. In-flight queries still complete
// but their results are discarded by the next Update's sequence bump.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
}

func (d *Debouncer) run(ctx context.Context, seq uint64, c Criteria) {
	d.mu.Lock()
	latest := seq == d.seq
	d.mu.Unlock()
	if !latest {
		return
	}

	books, err := d.svc.Query(ctx, c)
	if err != nil {
		books = nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		// A newer query was issued while this one was in flight.
		return
	}
	if d.apply != nil {
		d.apply(Result{Seq: seq, Criteria: c, Books: books, Err: err})
	}
}

package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bookfinder/internal/platform/openlibrary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog lets tests control per-query latency and failures without
// mock bookkeeping.
type stubCatalog struct {
	calls    atomic.Int64
	delayFor func(query string) time.Duration
	err      error
}

func (s *stubCatalog) Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error) {
	s.calls.Add(1)
	if s.delayFor != nil {
		select {
		case <-time.After(s.delayFor(query)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &openlibrary.SearchResponse{
		Docs: []openlibrary.SearchDoc{{Key: "/works/" + query, Title: query}},
	}, nil
}

func (s *stubCatalog) SearchByAuthor(ctx context.Context, author string, limit int) (*openlibrary.SearchResponse, error) {
	return s.Search(ctx, author, limit)
}

func (s *stubCatalog) BrowseSubject(ctx context.Context, subject string, limit int) (*openlibrary.SubjectResponse, error) {
	return &openlibrary.SubjectResponse{}, nil
}

func (s *stubCatalog) CoverURL(coverID int64, size string) string {
	return openlibrary.PlaceholderCover
}

// collector records applied results in order.
type collector struct {
	mu      sync.Mutex
	results []Result
	applied chan struct{}
}

func newCollector() *collector {
	return &collector{applied: make(chan struct{}, 16)}
}

func (c *collector) apply(r Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	c.applied <- struct{}{}
}

func (c *collector) snapshot() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}

func waitApplied(t *testing.T, c *collector) {
	t.Helper()
	select {
	case <-c.applied:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an applied result")
	}
}

func TestDebouncerCoalescesRapidUpdates(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewService(catalog, 20)
	col := newCollector()
	d := NewDebouncer(svc, 40*time.Millisecond, col.apply)

	ctx := context.Background()
	d.Update(ctx, Criteria{Text: "d"})
	d.Update(ctx, Criteria{Text: "du"})
	d.Update(ctx, Criteria{Text: "dune"})

	waitApplied(t, col)

	results := col.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, "dune", results[0].Criteria.Text)
	// Only the final criteria ever reached the catalog.
	assert.EqualValues(t, 1, catalog.calls.Load())
}

func TestDebouncerDiscardsStaleResponse(t *testing.T) {
	catalog := &stubCatalog{
		delayFor: func(query string) time.Duration {
			if query == "slow" {
				return 150 * time.Millisecond
			}
			return 0
		},
	}
	svc := NewService(catalog, 20)
	col := newCollector()
	d := NewDebouncer(svc, 10*time.Millisecond, col.apply)

	ctx := context.Background()
	d.Update(ctx, Criteria{Text: "slow"})
	// Let the slow query get issued, then supersede it.
	time.Sleep(40 * time.Millisecond)
	d.Update(ctx, Criteria{Text: "fast"})

	waitApplied(t, col)
	// Give the slow completion time to (wrongly) apply if the guard fails.
	time.Sleep(200 * time.Millisecond)

	results := col.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, "fast", results[0].Criteria.Text)
	assert.EqualValues(t, 2, catalog.calls.Load())
}

func TestDebouncerMapsFailureToEmptyResult(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("unreachable")}
	svc := NewService(catalog, 20)
	col := newCollector()
	d := NewDebouncer(svc, 10*time.Millisecond, col.apply)

	d.Update(context.Background(), Criteria{Text: "dune"})
	waitApplied(t, col)

	results := col.snapshot()
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Empty(t, results[0].Books)
}

func TestDebouncerStopCancelsPendingTrigger(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewService(catalog, 20)
	col := newCollector()
	d := NewDebouncer(svc, 20*time.Millisecond, col.apply)

	d.Update(context.Background(), Criteria{Text: "dune"})
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, col.snapshot())
	assert.EqualValues(t, 0, catalog.calls.Load())
}

func TestDebouncerSequenceNumbersIncrease(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewService(catalog, 20)
	col := newCollector()
	d := NewDebouncer(svc, 5*time.Millisecond, col.apply)

	ctx := context.Background()
	d.Update(ctx, Criteria{Text: "first"})
	waitApplied(t, col)
	d.Update(ctx, Criteria{Text: "second"})
	waitApplied(t, col)

	results := col.snapshot()
	require.Len(t, results, 2)
	assert.Less(t, results[0].Seq, results[1].Seq)
}

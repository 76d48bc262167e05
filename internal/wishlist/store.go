// Package wishlist holds the durable, deduplicated collection of
// user-saved books.
package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"bookfinder/internal/book"
	"bookfinder/internal/store"
)

// StorageKey is the single durable-storage key the wishlist lives under.
// The payload is the bare JSON array of books with no schema version; a
// future field-shape change misparses old payloads, which then degrade
// to an empty list on load.
const StorageKey = "bookfinder-wishlist"

// Store owns the ordered, id-deduplicated wishlist and is its single
// source of truth within a session. Construct one and pass it to
// whatever needs wishlist access.
type Store struct {
	kv  store.KV
	key string

	mu    sync.RWMutex
	items []book.Book
}

// NewStore loads the saved wishlist from kv. A missing or unreadable
// payload initializes an empty wishlist rather than failing startup.
func NewStore(ctx context.Context, kv store.KV) *Store {
	s := &Store{kv: kv, key: StorageKey}

	raw, ok, err := kv.Load(ctx, s.key)
	if err != nil {
		log.Printf("wishlist: load failed, starting empty: %v", err)
		return s
	}
	if !ok {
		return s
	}

	var items []book.Book
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("wishlist: unreadable saved state, starting empty: %v", err)
		return s
	}
	s.items = items
	return s
}

// Add inserts b unless an entry with the same ID already exists.
// Duplicate adds are a no-op that preserve the existing entry's data
// and position. The full wishlist is persisted after a real insert.
func (s *Store) Add(ctx context.Context, b book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == b.ID {
			return
		}
	}
	s.items = append(s.items, b)
	s.persistLocked(ctx)
}

// Remove deletes the entry with the given id; removing an absent id is
// a no-op and does not trigger a persist.
func (s *Store) Remove(ctx context.Context, bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == bookID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// Contains reports membership by id without side effects.
func (s *Store) Contains(bookID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == bookID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist and persists the empty state.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
}

// Count returns the current wishlist size.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a snapshot copy of the wishlist in insertion order.
func (s *Store) Items() []book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]book.Book, len(s.items))
	copy(items, s.items)
	return items
}

// persistLocked re-serializes the whole wishlist. Write failures are
// logged and swallowed: the in-memory state remains authoritative for
// the rest of the session.
func (s *Store) persistLocked(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []book.Book{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("wishlist: marshal failed: %v", err)
		return
	}
	if err := s.kv.Save(ctx, s.key, string(data)); err != nil {
		log.Printf("wishlist: persist failed: %v", err)
	}
}

// Package tips queues first-time hints for a user. At most one tip is
// pending at a time; the rest wait in arrival order. Dismissing a tip
// persists it as seen, so it never comes back, and promotes the next
// queued tip.
package tips

import (
	"context"
	"fmt"
	"sync"
)

// Tip is a one-off hint shown to the user.
type Tip struct {
	Key   string
	Title string
	Body  string
}

// PrefStore persists which tips a user has seen. *apiclient.Client
// satisfies it.
type PrefStore interface {
	Prefs(ctx context.Context) (map[string]bool, error)
	SetPref(ctx context.Context, key string, seen bool) error
}

// Queue holds pending tips for one user. Safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	store PrefStore
	seen  map[string]bool
	tips  []Tip
}

// NewQueue loads the user's seen flags and returns an empty queue.
func NewQueue(ctx context.Context, store PrefStore) (*Queue, error) {
	prefs, err := store.Prefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prefs: %w", err)
	}

	seen := make(map[string]bool, len(prefs))
	for key, v := range prefs {
		seen[key] = v
	}

	return &Queue{
		store: store,
		seen:  seen,
	}, nil
}

// Enqueue adds a tip unless the user has already seen it or a tip
// with the same key is already queued. It reports whether the tip
// was added.
func (q *Queue) Enqueue(tip Tip) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if tip.Key == "" || q.seen[tip.Key] {
		return false
	}

	for _, queued := range q.tips {
		if queued.Key == tip.Key {
			return false
		}
	}

	q.tips = append(q.tips, tip)

	return true
}

// Pending returns the tip currently due to be shown, oldest first.
// ok is false when nothing is pending.
func (q *Queue) Pending() (Tip, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tips) == 0 {
		return Tip{}, false
	}

	return q.tips[0], true
}

// Dismiss marks the pending tip as seen, persists the flag and
// promotes the next queued tip. Dismissing an empty queue is a no-op.
func (q *Queue) Dismiss(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tips) == 0 {
		return nil
	}

	key := q.tips[0].Key

	if err := q.store.SetPref(ctx, key, true); err != nil {
		return fmt.Errorf("failed to persist seen flag: %w", err)
	}

	q.seen[key] = true
	q.tips = q.tips[1:]

	return nil
}

// Len reports how many tips are queued, the pending one included.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tips)
}

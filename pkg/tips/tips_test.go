package tips

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPrefStore struct{ mock.Mock }

func (m *mockPrefStore) Prefs(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *mockPrefStore) SetPref(ctx context.Context, key string, seen bool) error {
	args := m.Called(ctx, key, seen)
	return args.Error(0)
}

func newQueue(t *testing.T, prefs map[string]bool) (*Queue, *mockPrefStore) {
	t.Helper()

	store := new(mockPrefStore)
	store.On("Prefs", mock.Anything).Return(prefs, nil).Once()

	q, err := NewQueue(context.Background(), store)
	require.NoError(t, err)

	return q, store
}

func TestEnqueue_SeenTipSkipped(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(t, map[string]bool{"tip.share-doc": true})

	assert.False(t, q.Enqueue(Tip{Key: "tip.share-doc", Title: "Share it"}))
	assert.Equal(t, 0, q.Len())
}

func TestEnqueue_DuplicateKeySkipped(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(t, map[string]bool{})

	assert.True(t, q.Enqueue(Tip{Key: "tip.apply-ops"}))
	assert.False(t, q.Enqueue(Tip{Key: "tip.apply-ops"}))
	assert.Equal(t, 1, q.Len())
}

func TestEnqueue_EmptyKeySkipped(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(t, map[string]bool{})

	assert.False(t, q.Enqueue(Tip{Title: "no key"}))
}

func TestPending_OldestFirst(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(t, map[string]bool{})

	q.Enqueue(Tip{Key: "tip.first"})
	q.Enqueue(Tip{Key: "tip.second"})

	pending, ok := q.Pending()
	require.True(t, ok)
	assert.Equal(t, "tip.first", pending.Key)
}

func TestPending_EmptyQueue(t *testing.T) {
	t.Parallel()

	q, _ := newQueue(t, map[string]bool{})

	_, ok := q.Pending()
	assert.False(t, ok)
}

func TestDismiss_MarksSeenAndPromotesNext(t *testing.T) {
	t.Parallel()

	q, store := newQueue(t, map[string]bool{})
	store.On("SetPref", mock.Anything, "tip.first", true).Return(nil)

	q.Enqueue(Tip{Key: "tip.first"})
	q.Enqueue(Tip{Key: "tip.second"})

	require.NoError(t, q.Dismiss(context.Background()))

	pending, ok := q.Pending()
	require.True(t, ok)
	assert.Equal(t, "tip.second", pending.Key)

	// Dismissed tips never come back.
	assert.False(t, q.Enqueue(Tip{Key: "tip.first"}))

	store.AssertExpectations(t)
}

func TestDismiss_EmptyQueueNoOp(t *testing.T) {
	t.Parallel()

	q, store := newQueue(t, map[string]bool{})

	assert.NoError(t, q.Dismiss(context.Background()))
	store.AssertNotCalled(t, "SetPref", mock.Anything, mock.Anything, mock.Anything)
}

func TestDismiss_StoreErrorKeepsTipPending(t *testing.T) {
	t.Parallel()

	q, store := newQueue(t, map[string]bool{})
	store.On("SetPref", mock.Anything, "tip.first", true).Return(errors.New("network down"))

	q.Enqueue(Tip{Key: "tip.first"})

	require.Error(t, q.Dismiss(context.Background()))

	pending, ok := q.Pending()
	require.True(t, ok)
	assert.Equal(t, "tip.first", pending.Key)
}

func TestNewQueue_PrefsError(t *testing.T) {
	t.Parallel()

	store := new(mockPrefStore)
	store.On("Prefs", mock.Anything).Return((map[string]bool)(nil), errors.New("unauthorized"))

	_, err := NewQueue(context.Background(), store)
	assert.Error(t, err)
}

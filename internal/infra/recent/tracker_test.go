package recent

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/infra/kvstore"
)

type countingStore struct {
	*kvstore.MemoryStore
	puts   int
	putErr error
	getErr error
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: kvstore.NewMemory()}
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *countingStore) Put(ctx context.Context, key string, value []byte) error {
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	return s.MemoryStore.Put(ctx, key, value)
}

func TestTrackerVisitPrependsAndDedupes(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(newCountingStore(), Options{})

	require.NoError(t, tracker.Visit(ctx, "weather"))
	require.NoError(t, tracker.Visit(ctx, "qr-generator"))
	require.NoError(t, tracker.Visit(ctx, "lucky-wheel"))
	require.NoError(t, tracker.Visit(ctx, "weather"))

	require.Equal(t, []string{"weather", "lucky-wheel", "qr-generator"}, tracker.List())
}

func TestTrackerRepeatedVisitIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	tracker := NewTracker(store, Options{})

	require.NoError(t, tracker.Visit(ctx, "pdf-text"))
	require.NoError(t, tracker.Visit(ctx, "weather"))
	writes := store.puts

	for range 5 {
		require.NoError(t, tracker.Visit(ctx, "weather"))
	}
	require.Equal(t, writes, store.puts)
	require.Equal(t, []string{"weather", "pdf-text"}, tracker.List())
}

func TestTrackerEnforcesBound(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(newCountingStore(), Options{})

	for i := 1; i <= 7; i++ {
		require.NoError(t, tracker.Visit(ctx, fmt.Sprintf("tool-%d", i)))
	}
	require.Equal(t, []string{"tool-7", "tool-6", "tool-5", "tool-4", "tool-3", "tool-2"}, tracker.List())
	require.Len(t, tracker.List(), domain.RecentToolsLimit)
}

func TestTrackerRoundTripThroughBolt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "toolbox.db")
	store, err := kvstore.OpenBolt(path)
	require.NoError(t, err)

	tracker := NewTracker(store, Options{})
	for _, slug := range []string{"a", "b", "c", "b"} {
		require.NoError(t, tracker.Visit(ctx, slug))
	}
	want := tracker.List()
	require.NoError(t, store.Close())

	reopened, err := kvstore.OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded := NewTracker(reopened, Options{})
	loaded.Load(ctx)
	require.Equal(t, want, loaded.List())
	require.Equal(t, []string{"b", "c", "a"}, loaded.List())
}

func TestTrackerLoadTreatsBadDataAsEmpty(t *testing.T) {
	ctx := context.Background()
	cases := map[string][]byte{
		"missing":   nil,
		"malformed": []byte(`{not json`),
		"wrongType": []byte(`{"slugs":["a"]}`),
		"numbers":   []byte(`[1,2,3]`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := kvstore.NewMemory()
			if raw != nil {
				require.NoError(t, store.Put(ctx, domain.RecentToolsKey, raw))
			}
			tracker := NewTracker(store, Options{})
			tracker.Load(ctx)
			require.Empty(t, tracker.List())
		})
	}
}

func TestTrackerLoadSanitizes(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Put(ctx, domain.RecentToolsKey, []byte(`["a"," ","b","a","c","d","e","f","g"]`)))

	tracker := NewTracker(store, Options{})
	tracker.Load(ctx)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, tracker.List())
}

func TestTrackerLoadIgnoresStoreErrors(t *testing.T) {
	store := newCountingStore()
	store.getErr = errors.New("disk gone")
	tracker := NewTracker(store, Options{})
	tracker.Load(context.Background())
	require.Empty(t, tracker.List())
}

func TestTrackerClearPersistsEmptyList(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	tracker := NewTracker(store, Options{})
	require.NoError(t, tracker.Visit(ctx, "weather"))

	require.NoError(t, tracker.Clear(ctx))
	require.Empty(t, tracker.List())

	raw, err := store.Get(ctx, domain.RecentToolsKey)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))
}

func TestTrackerVisitReportsPersistFailure(t *testing.T) {
	store := newCountingStore()
	store.putErr = errors.New("read-only")
	tracker := NewTracker(store, Options{})

	err := tracker.Visit(context.Background(), "weather")
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeUnavailable, code)
	require.Equal(t, []string{"weather"}, tracker.List())
}

func TestTrackerVisitRejectsBlankSlug(t *testing.T) {
	tracker := NewTracker(kvstore.NewMemory(), Options{})
	require.Error(t, tracker.Visit(context.Background(), "  "))
	require.Empty(t, tracker.List())
}

func TestTrackerListIsACopy(t *testing.T) {
	tracker := NewTracker(kvstore.NewMemory(), Options{})
	require.NoError(t, tracker.Visit(context.Background(), "weather"))
	list := tracker.List()
	list[0] = "mutated"
	require.Equal(t, []string{"weather"}, tracker.List())
}

package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipecatalog/storage"
)

type failingBlob struct {
	getErr error
	setErr error
}

func (f failingBlob) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f failingBlob) Set(context.Context, string, []byte) error   { return f.setErr }

func TestStore_Toggle(t *testing.T) {
	ctx := context.Background()
	blob := storage.NewMemoryBlob()
	store := NewStore(blob)

	fav, err := store.IsFavorite(ctx, 5)
	require.NoError(t, err)
	assert.False(t, fav)

	on, err := store.Toggle(ctx, 5)
	require.NoError(t, err)
	assert.True(t, on)

	fav, err = store.IsFavorite(ctx, 5)
	require.NoError(t, err)
	assert.True(t, fav)

	off, err := store.Toggle(ctx, 5)
	require.NoError(t, err)
	assert.False(t, off)

	fav, err = store.IsFavorite(ctx, 5)
	require.NoError(t, err)
	assert.False(t, fav)

	persisted, err := blob.Get(ctx, Key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(persisted))
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	blob := storage.NewMemoryBlob()
	store := NewStore(blob)

	for _, id := range []int{3, 1, 2, 1} {
		_, err := store.Toggle(ctx, id)
		require.NoError(t, err)
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, ids)

	persisted, err := blob.Get(ctx, Key)
	require.NoError(t, err)
	assert.JSONEq(t, `[3,2]`, string(persisted))
}

func TestStore_ReadsPersistedState(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   []byte
		expected []int
	}{
		{name: "existing ids", stored: []byte(`[4, 8]`), expected: []int{4, 8}},
		{name: "malformed value reads as empty", stored: []byte(`{not json`), expected: []int{}},
		{name: "wrong shape reads as empty", stored: []byte(`{"ids": [1]}`), expected: []int{}},
		{name: "null reads as empty", stored: []byte(`null`), expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := storage.NewMemoryBlob()
			require.NoError(t, blob.Set(ctx, Key, tt.stored))

			ids, err := NewStore(blob).List(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("nothing stored", func(t *testing.T) {
		ids, err := NewStore(storage.NewMemoryBlob()).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{}, ids)
	})

	t.Run("malformed value is replaced on toggle", func(t *testing.T) {
		blob := storage.NewMemoryBlob()
		require.NoError(t, blob.Set(ctx, Key, []byte(`garbage`)))

		on, err := NewStore(blob).Toggle(ctx, 7)
		require.NoError(t, err)
		assert.True(t, on)

		persisted, err := blob.Get(ctx, Key)
		require.NoError(t, err)
		assert.JSONEq(t, `[7]`, string(persisted))
	})
}

func TestStore_BackendErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewStore(failingBlob{getErr: errors.New("disk gone")}).List(ctx)
	assert.ErrorContains(t, err, "disk gone")

	_, err = NewStore(failingBlob{getErr: storage.ErrNotFound, setErr: errors.New("read-only")}).Toggle(ctx, 1)
	assert.ErrorContains(t, err, "read-only")
}

func TestStore_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemoryBlob())

	var wg sync.WaitGroup
	for id := 1; id <= 20; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, _ = store.Toggle(ctx, id)
		}(id)
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 20)
}

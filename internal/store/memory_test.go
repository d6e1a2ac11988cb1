package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore[string]()

	_, err := st.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, "b", "second"))
	require.NoError(t, st.Save(ctx, "a", "first"))
	v, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	all, err := st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, all)

	gone, err := st.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", gone)
	_, err = st.Delete(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = st.Save(ctx, fmt.Sprint(i), i)
			_, _ = st.List(ctx)
		}(i)
	}
	wg.Wait()
	all, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

package idgenerator

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/openseries/seriesdb/common/kvstore"
	"github.com/openseries/seriesdb/master/store"
	"github.com/openseries/seriesdb/util"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *store.Store {
	s, err := store.NewStore(context.TODO(), &store.Config{
		Path: path,
		KVOption: kvstore.Option{
			ColumnFamily: []kvstore.CF{CF},
		},
	})
	require.NoError(t, err)
	return s
}

func TestIDGenerator_Alloc(t *testing.T) {
	ctx := context.TODO()
	path, err := util.GenTmpPath()
	require.NoError(t, err)
	defer os.RemoveAll(path)
	s := newTestStore(t, path)
	defer s.Close()

	g, err := NewIDGenerator(s)
	require.NoError(t, err)

	base, new, err := g.Alloc(ctx, "sid", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(0), base)
	require.Equal(t, uint64(1), new)

	base, new, err = g.Alloc(ctx, "sid", 5)
	require.NoError(t, err)
	require.Equal(t, uint64(1), base)
	require.Equal(t, uint64(6), new)

	// scopes do not leak into each other
	base, new, err = g.Alloc(ctx, "other", 1)
	require.NoError(t, err)
	require.Equal(t, uint64(0), base)
	require.Equal(t, uint64(1), new)

	_, _, err = g.Alloc(ctx, "sid", 0)
	require.Equal(t, ErrInvalidCount, err)
	_, _, err = g.Alloc(ctx, "sid", -3)
	require.Equal(t, ErrInvalidCount, err)

	base, new, err = g.Alloc(ctx, "sid", MaxCount+1)
	require.NoError(t, err)
	require.Equal(t, uint64(MaxCount), new-base)
}

func TestIDGenerator_Reload(t *testing.T) {
	ctx := context.TODO()
	path, err := util.GenTmpPath()
	require.NoError(t, err)
	defer os.RemoveAll(path)

	s := newTestStore(t, path)
	g, err := NewIDGenerator(s)
	require.NoError(t, err)
	_, last, err := g.Alloc(ctx, "sid", 7)
	require.NoError(t, err)
	s.Close()

	s = newTestStore(t, path)
	defer s.Close()
	g, err = NewIDGenerator(s)
	require.NoError(t, err)
	base, _, err := g.Alloc(ctx, "sid", 1)
	require.NoError(t, err)
	require.Equal(t, last, base)
}

func TestIDGenerator_ConcurrentAlloc(t *testing.T) {
	ctx := context.TODO()
	path, err := util.GenTmpPath()
	require.NoError(t, err)
	defer os.RemoveAll(path)
	s := newTestStore(t, path)
	defer s.Close()

	g, err := NewIDGenerator(s)
	require.NoError(t, err)

	const (
		workers = 16
		count   = 3
	)
	bases := make([]uint64, workers)
	errs := make([]error, workers)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			bases[i], _, errs[i] = g.Alloc(ctx, "sid", count)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })
	for i := 0; i < workers; i++ {
		require.Equal(t, uint64(i*count), bases[i])
	}
}

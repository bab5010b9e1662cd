package catalog

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func BenchmarkDatabaseSet_Put(b *testing.B) {
	s := databaseSet{}
	rand.Seed(time.Now().Unix())
	for i := 0; i < b.N; i++ {
		x := rand.Int()
		s.Put(newDatabase(&databaseInfo{Name: fmt.Sprintf("db-%d", x)}))
	}
}

func BenchmarkDatabaseSet_Get(b *testing.B) {
	s := databaseSet{}
	for i := 0; i < 3000; i++ {
		s.Put(newDatabase(&databaseInfo{Name: fmt.Sprintf("db-%d", i)}))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Get(fmt.Sprintf("db-%d", i%3000))
	}
}

func TestDatabaseSet_Put(t *testing.T) {
	s := databaseSet{}
	for _, name := range []string{"b", "d", "c", "e"} {
		s.Put(newDatabase(&databaseInfo{Name: name}))
	}

	idx, ok := search(s.databases, "d")
	require.Equal(t, 2, idx)
	require.True(t, ok)

	idx, ok = search(s.databases, "f")
	require.Equal(t, 4, idx)
	require.False(t, ok)

	first, _ := s.Get("c")
	s.Put(newDatabase(&databaseInfo{Name: "c"}))
	require.Equal(t, 4, s.Len())
	got, ok := s.Get("c")
	require.True(t, ok)
	require.Equal(t, first, got)
}

func TestDatabaseSet_Names(t *testing.T) {
	s := databaseSet{}
	for _, name := range []string{"metrics", "app", "logs"} {
		s.Put(newDatabase(&databaseInfo{Name: name}))
	}

	require.Equal(t, []string{"app", "logs", "metrics"}, s.Names())
	require.Equal(t, 3, len(s.List()))
}

func TestDatabase_GetInfo(t *testing.T) {
	db := newDatabase(&databaseInfo{Name: "metrics", Status: DatabaseStatusInit})

	info := db.GetInfo()
	info.Status = DatabaseStatusNormal
	require.Equal(t, DatabaseStatusInit, db.GetInfo().Status)

	db.setStatus(DatabaseStatusNormal)
	require.Equal(t, DatabaseStatusNormal, db.GetInfo().Status)
}

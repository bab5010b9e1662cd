// Copyright 2022 The SeriesDB Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package idgenerator

import (
	"context"
	"sync"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/cubefs/cubefs/blobstore/util/errors"
	"github.com/openseries/seriesdb/master/store"
)

var (
	MaxCount = 1000000

	ErrInvalidCount = errors.New("request count is invalid")
)

// IDGenerator hands out monotonic id ranges scoped by name. The advanced
// cursor is persisted before any id of a range is returned, so a restart can
// never issue an id twice.
type IDGenerator interface {
	Alloc(ctx context.Context, name string, count int) (base, new uint64, err error)
}

type idGenerator struct {
	scopeItems map[string]uint64

	storage *storage
	lock    sync.Mutex
}

func NewIDGenerator(store *store.Store) (IDGenerator, error) {
	_, ctx := trace.StartSpanFromContext(context.Background(), "NewIDGenerator")

	s := &idGenerator{storage: &storage{kvStore: store.KVStore()}}
	if err := s.loadData(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Alloc returns the range (base, new], the first issued id is base+1 and the
// last one is new.
func (s *idGenerator) Alloc(ctx context.Context, name string, count int) (base, new uint64, err error) {
	span := trace.SpanFromContextSafe(ctx)
	if count <= 0 {
		return 0, 0, ErrInvalidCount
	}

	if count > MaxCount {
		count = MaxCount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	current := s.scopeItems[name]
	newCurrent := current + uint64(count)
	if err = s.storage.Put(ctx, name, newCurrent); err != nil {
		span.Errorf("put id failed, name %s, err: %v", name, err)
		return 0, 0, err
	}
	s.scopeItems[name] = newCurrent

	span.Debugf("alloc success, name %s, base %d, new %d", name, current, newCurrent)
	return current, newCurrent, nil
}

func (s *idGenerator) loadData(ctx context.Context) error {
	items, err := s.storage.Load(ctx)
	if err != nil {
		return err
	}
	s.scopeItems = items
	return nil
}

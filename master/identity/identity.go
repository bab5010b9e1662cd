package identity

import (
	"context"
	"sync"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/openseries/seriesdb/common/kvstore"
	apierrors "github.com/openseries/seriesdb/errors"
	"github.com/openseries/seriesdb/master/store"
	"github.com/openseries/seriesdb/proto"
)

// Identity keeps the writer id of this deployment. The id tags every series
// written through the data path, handing out a duplicate after a crash would
// corrupt ownership of the written data, so an assignment is acked only after
// it is durable.
type Identity interface {
	GetWriterID(ctx context.Context) (proto.WriterID, error)
	SetWriterID(ctx context.Context, id proto.WriterID) error
	Load(ctx context.Context) error
}

type Config struct {
	// a second assignment is accepted and bumps the generation unless
	// reassignment is disabled
	DisableReassign bool `json:"disable_reassign"`

	Store *store.Store `json:"-"`
}

type identity struct {
	info *writerInfo

	cfg     *Config
	storage *storage

	lock sync.RWMutex
}

func NewIdentity(ctx context.Context, cfg *Config) Identity {
	return &identity{
		cfg:     cfg,
		storage: &storage{kvStore: cfg.Store.KVStore()},
	}
}

func (i *identity) Load(ctx context.Context) error {
	info, err := i.storage.Get(ctx)
	if err != nil {
		if err == kvstore.ErrNotFound {
			return nil
		}
		return err
	}

	i.lock.Lock()
	i.info = info
	i.lock.Unlock()
	return nil
}

func (i *identity) GetWriterID(ctx context.Context) (proto.WriterID, error) {
	i.lock.RLock()
	defer i.lock.RUnlock()

	if i.info == nil {
		return 0, apierrors.ErrWriterIDNotSet
	}
	return i.info.ID, nil
}

func (i *identity) SetWriterID(ctx context.Context, id proto.WriterID) error {
	span := trace.SpanFromContextSafe(ctx)

	if id == unsetWriterID {
		return apierrors.ErrInvalidWriterID
	}

	i.lock.Lock()
	defer i.lock.Unlock()

	if i.info != nil && i.cfg.DisableReassign {
		span.Warnf("writer id already assigned to %d, refuse %d", i.info.ID, id)
		return apierrors.ErrWriterIDAlreadySet
	}

	info := &writerInfo{
		Version:    writerInfoVersion,
		ID:         id,
		Generation: 1,
		UpdatedAt:  time.Now().UnixMilli(),
	}
	if i.info != nil {
		info.Generation = i.info.Generation + 1
	}

	// memory only changes after the write commits
	if err := i.storage.Put(ctx, info); err != nil {
		span.Errorf("persist writer id %d failed: %s", id, err)
		return err
	}
	i.info = info

	span.Infof("writer id set to %d, generation %d", info.ID, info.Generation)
	return nil
}

package master

import (
	"context"

	"github.com/cubefs/cubefs/blobstore/common/trace"

	"github.com/openseries/seriesdb/common/kvstore"
	apierrors "github.com/openseries/seriesdb/errors"
	"github.com/openseries/seriesdb/master/catalog"
	"github.com/openseries/seriesdb/master/identity"
	"github.com/openseries/seriesdb/master/idgenerator"
	"github.com/openseries/seriesdb/master/store"
	"github.com/openseries/seriesdb/proto"
)

type Config struct {
	StoreConfig    store.Config    `json:"store_config"`
	CatalogConfig  catalog.Config  `json:"catalog_config"`
	IdentityConfig identity.Config `json:"identity_config"`
}

type Master struct {
	catalog.Catalog
	identity.Identity

	store *store.Store
}

type Stats struct {
	WriterID  proto.WriterID `json:"writer_id"`
	Databases int            `json:"databases"`
	Store     kvstore.Stats  `json:"store"`
}

func NewMaster(cfg *Config) *Master {
	span, ctx := trace.StartSpanFromContext(context.Background(), "")

	// one kv store hosts every module, the column families have to be
	// declared before open
	cfg.StoreConfig.KVOption.ColumnFamily = []kvstore.CF{catalog.CF, identity.CF, idgenerator.CF}

	store, err := store.NewStore(ctx, &cfg.StoreConfig)
	if err != nil {
		span.Fatalf("new store failed: %s", err)
	}

	cfg.CatalogConfig.Store = store
	cfg.IdentityConfig.Store = store

	m := &Master{
		Catalog:  catalog.NewCatalog(ctx, &cfg.CatalogConfig),
		Identity: identity.NewIdentity(ctx, &cfg.IdentityConfig),
		store:    store,
	}

	if err := m.Catalog.Load(ctx); err != nil {
		span.Fatalf("load catalog failed: %s", err)
	}
	if err := m.Identity.Load(ctx); err != nil {
		span.Fatalf("load identity failed: %s", err)
	}
	return m
}

func (m *Master) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	id, err := m.GetWriterID(ctx)
	if err != nil && err != apierrors.ErrWriterIDNotSet {
		return nil, err
	}
	stats.WriterID = id

	names, err := m.ListDatabases(ctx)
	if err != nil {
		return nil, err
	}
	stats.Databases = len(names)

	storeStats, err := m.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.Store = storeStats

	return stats, nil
}

func (m *Master) Close() {
	m.Catalog.Close()
	m.store.Close()
}

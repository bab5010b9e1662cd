package store

import (
	"context"

	"github.com/openseries/seriesdb/common/kvstore"
)

type Config struct {
	Path     string         `json:"path"`
	KVOption kvstore.Option `json:"kv_option"`
}

type Store struct {
	kvStore kvstore.Store

	cfg *Config
}

func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	kvStorePath := cfg.Path + "/kv"
	// every ack the master hands out has to survive a crash, so writes
	// always go through a synced wal
	cfg.KVOption.Sync = true
	cfg.KVOption.CreateIfMissing = true
	kvStore, err := kvstore.NewKVStore(ctx, kvStorePath, kvstore.RocksdbLsmKVType, &cfg.KVOption)
	if err != nil {
		return nil, err
	}

	return &Store{
		kvStore: kvStore,
		cfg:     cfg,
	}, nil
}

func (s *Store) KVStore() kvstore.Store {
	return s.kvStore
}

func (s *Store) Stats(ctx context.Context) (kvstore.Stats, error) {
	return s.kvStore.Stats(ctx)
}

func (s *Store) Close() {
	s.kvStore.Close()
}

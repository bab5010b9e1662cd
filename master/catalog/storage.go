package catalog

import (
	"context"

	"github.com/openseries/seriesdb/common/kvstore"
	"github.com/openseries/seriesdb/master/store"
)

const CF = kvstore.CF("catalog")

var (
	databaseKeyPrefix = []byte("d")
	keyInfix          = []byte("/")
)

func newStorage(kvStore *store.Store) *storage {
	return &storage{
		kvStore:       kvStore.KVStore(),
		keysGenerator: &keysGenerator{},
	}
}

type storage struct {
	kvStore       kvstore.Store
	keysGenerator *keysGenerator
}

// PutDatabase writes the full record, both the initial create and the
// later status flip go through here.
func (s *storage) PutDatabase(ctx context.Context, info *databaseInfo) error {
	data, err := info.Marshal()
	if err != nil {
		return err
	}

	return s.kvStore.SetRaw(ctx, CF, s.keysGenerator.encodeDatabaseKey(info.Name), data, nil)
}

func (s *storage) GetDatabase(ctx context.Context, name string) (*databaseInfo, error) {
	data, err := s.kvStore.GetRaw(ctx, CF, s.keysGenerator.encodeDatabaseKey(name), nil)
	if err != nil {
		return nil, err
	}

	info := &databaseInfo{}
	if err = info.Unmarshal(data); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *storage) ListDatabases(ctx context.Context) (ret []*databaseInfo, err error) {
	lr := s.kvStore.List(ctx, CF, s.keysGenerator.encodeDatabaseKeyPrefix(), nil, nil)
	defer lr.Close()

	for {
		kg, vg, err := lr.ReadNext()
		if err != nil {
			return nil, err
		}

		if kg == nil || vg == nil {
			return ret, nil
		}

		databaseInfo := &databaseInfo{}
		if err = databaseInfo.Unmarshal(vg.Value()); err != nil {
			kg.Close()
			vg.Close()
			return nil, err
		}

		ret = append(ret, databaseInfo)
		kg.Close()
		vg.Close()
	}
}

type keysGenerator struct{}

func (k *keysGenerator) encodeDatabaseKey(name string) []byte {
	ret := make([]byte, len(databaseKeyPrefix)+len(keyInfix)+len(name))
	copy(ret, databaseKeyPrefix)
	copy(ret[len(databaseKeyPrefix):], keyInfix)
	copy(ret[len(databaseKeyPrefix)+len(keyInfix):], name)
	return ret
}

func (k *keysGenerator) encodeDatabaseKeyPrefix() []byte {
	ret := make([]byte, len(databaseKeyPrefix)+len(keyInfix))
	copy(ret, databaseKeyPrefix)
	copy(ret[len(databaseKeyPrefix):], keyInfix)
	return ret
}

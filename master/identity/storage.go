package identity

import (
	"context"
	"encoding/binary"

	"github.com/openseries/seriesdb/common/kvstore"
)

const CF = kvstore.CF("identity")

var (
	writerKeyPrefix = []byte("w")
	keyInfix        = []byte("/")
)

type storage struct {
	kvStore kvstore.Store
}

func (s *storage) Get(ctx context.Context) (*writerInfo, error) {
	v, err := s.kvStore.Get(ctx, CF, encodeWriterKey(), nil)
	if err != nil {
		return nil, err
	}

	info := &writerInfo{}
	err = info.Unmarshal(v.Value())
	v.Close()
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (s *storage) Put(ctx context.Context, info *writerInfo) error {
	data, err := info.Marshal()
	if err != nil {
		return err
	}
	return s.kvStore.SetRaw(ctx, CF, encodeWriterKey(), data, nil)
}

// single slot today, the trailing index leaves room for per-tenant writers
func encodeWriterKey() []byte {
	ret := make([]byte, len(writerKeyPrefix)+len(keyInfix)+4)
	copy(ret, writerKeyPrefix)
	copy(ret[len(writerKeyPrefix):], keyInfix)
	binary.BigEndian.PutUint32(ret[len(ret)-4:], 0)
	return ret
}

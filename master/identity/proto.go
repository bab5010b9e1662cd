package identity

import (
	"encoding/json"

	"github.com/openseries/seriesdb/proto"
)

const writerInfoVersion = 1

// 0 is the wire sentinel for "not assigned yet" and can never be stored
const unsetWriterID = proto.WriterID(0)

// writerInfo is the persisted writer identity record. Decoding ignores
// unknown fields, so records written by a newer release still load.
type writerInfo struct {
	Version    uint8          `json:"version"`
	ID         proto.WriterID `json:"id"`
	Generation uint64         `json:"generation"`
	UpdatedAt  int64          `json:"updated_at"`
}

func (w *writerInfo) Marshal() ([]byte, error) {
	return json.Marshal(w)
}

func (w *writerInfo) Unmarshal(data []byte) error {
	return json.Unmarshal(data, w)
}

func (w *writerInfo) Clone() *writerInfo {
	info := *w
	return &info
}

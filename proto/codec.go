package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the grpc content subtype both ends of a connection select to
// exchange the hand-written messages of this package. Clients must dial with
// grpc.CallContentSubtype(CodecName).
const CodecName = "seriesdb"

type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("codec %s: can not marshal %T", CodecName, v)
	}
	return m.Marshal()
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("codec %s: can not unmarshal into %T", CodecName, v)
	}
	return m.Unmarshal(data)
}

func (codec) Name() string {
	return CodecName
}

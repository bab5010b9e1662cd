package proto

const (
	ReqIdKey = "req-id"
)

type (
	WriterID = uint32
	Sid      = uint64
)

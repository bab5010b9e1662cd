package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Messages of the SeriesDBMaster service. The codecs below are written by
// hand against the protowire format, field numbers must stay in sync with
// seriesdb.proto. Decoders skip fields they do not know about, so records
// written by a newer release still decode here.

type DatabaseRules struct {
	Name                   string
	RetentionSeconds       int64
	ReplicationFactor      uint32
	ShardCount             uint32
	PartitionPeriodSeconds int64
}

func (m *DatabaseRules) Marshal() ([]byte, error) {
	var data []byte
	if m.Name != "" {
		data = protowire.AppendTag(data, 1, protowire.BytesType)
		data = protowire.AppendString(data, m.Name)
	}
	if m.RetentionSeconds != 0 {
		data = protowire.AppendTag(data, 2, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.RetentionSeconds))
	}
	if m.ReplicationFactor != 0 {
		data = protowire.AppendTag(data, 3, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.ReplicationFactor))
	}
	if m.ShardCount != 0 {
		data = protowire.AppendTag(data, 4, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.ShardCount))
	}
	if m.PartitionPeriodSeconds != 0 {
		data = protowire.AppendTag(data, 5, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.PartitionPeriodSeconds))
	}
	return data, nil
}

func (m *DatabaseRules) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Name = v
			data = data[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.RetentionSeconds = int64(v)
			data = data[n:]
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ReplicationFactor = uint32(v)
			data = data[n:]
		case num == 4 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.ShardCount = uint32(v)
			data = data[n:]
		case num == 5 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.PartitionPeriodSeconds = int64(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func (m *DatabaseRules) Clone() *DatabaseRules {
	ret := *m
	return &ret
}

type GetWriterIdRequest struct{}

func (m *GetWriterIdRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *GetWriterIdRequest) Unmarshal(data []byte) error { return skipAll(data) }

type GetWriterIdResponse struct {
	Id WriterID
}

func (m *GetWriterIdResponse) Marshal() ([]byte, error) {
	var data []byte
	if m.Id != 0 {
		data = protowire.AppendTag(data, 1, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.Id))
	}
	return data, nil
}

func (m *GetWriterIdResponse) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Id = WriterID(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

type UpdateWriterIdRequest struct {
	Id WriterID
}

func (m *UpdateWriterIdRequest) Marshal() ([]byte, error) {
	var data []byte
	if m.Id != 0 {
		data = protowire.AppendTag(data, 1, protowire.VarintType)
		data = protowire.AppendVarint(data, uint64(m.Id))
	}
	return data, nil
}

func (m *UpdateWriterIdRequest) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Id = WriterID(v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

type UpdateWriterIdResponse struct{}

func (m *UpdateWriterIdResponse) Marshal() ([]byte, error) { return nil, nil }

func (m *UpdateWriterIdResponse) Unmarshal(data []byte) error { return skipAll(data) }

type ListDatabasesRequest struct{}

func (m *ListDatabasesRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *ListDatabasesRequest) Unmarshal(data []byte) error { return skipAll(data) }

type ListDatabasesResponse struct {
	Names []string
}

func (m *ListDatabasesResponse) Marshal() ([]byte, error) {
	var data []byte
	for _, name := range m.Names {
		data = protowire.AppendTag(data, 1, protowire.BytesType)
		data = protowire.AppendString(data, name)
	}
	return data, nil
}

func (m *ListDatabasesResponse) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Names = append(m.Names, v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

type GetDatabaseRequest struct {
	Name string
}

func (m *GetDatabaseRequest) Marshal() ([]byte, error) {
	var data []byte
	if m.Name != "" {
		data = protowire.AppendTag(data, 1, protowire.BytesType)
		data = protowire.AppendString(data, m.Name)
	}
	return data, nil
}

func (m *GetDatabaseRequest) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Name = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

type GetDatabaseResponse struct {
	Rules *DatabaseRules
}

func (m *GetDatabaseResponse) Marshal() ([]byte, error) {
	return marshalRulesField(m.Rules)
}

func (m *GetDatabaseResponse) Unmarshal(data []byte) error {
	rules, err := unmarshalRulesField(data)
	if err != nil {
		return err
	}
	m.Rules = rules
	return nil
}

type CreateDatabaseRequest struct {
	Rules *DatabaseRules
}

func (m *CreateDatabaseRequest) Marshal() ([]byte, error) {
	return marshalRulesField(m.Rules)
}

func (m *CreateDatabaseRequest) Unmarshal(data []byte) error {
	rules, err := unmarshalRulesField(data)
	if err != nil {
		return err
	}
	m.Rules = rules
	return nil
}

type CreateDatabaseResponse struct{}

func (m *CreateDatabaseResponse) Marshal() ([]byte, error) { return nil, nil }

func (m *CreateDatabaseResponse) Unmarshal(data []byte) error { return skipAll(data) }

// marshalRulesField encodes a single embedded DatabaseRules at field 1, the
// shape shared by GetDatabaseResponse and CreateDatabaseRequest.
func marshalRulesField(rules *DatabaseRules) ([]byte, error) {
	if rules == nil {
		return nil, nil
	}
	sub, err := rules.Marshal()
	if err != nil {
		return nil, err
	}
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendBytes(data, sub)
	return data, nil
}

func unmarshalRulesField(data []byte) (*DatabaseRules, error) {
	var rules *DatabaseRules
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			rules = new(DatabaseRules)
			if err := rules.Unmarshal(v); err != nil {
				return nil, err
			}
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return rules, nil
}

func skipAll(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
	}
	return nil
}

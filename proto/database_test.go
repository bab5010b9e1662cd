package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestDatabaseRulesCodec(t *testing.T) {
	rules := &DatabaseRules{
		Name:                   "metrics",
		RetentionSeconds:       3600 * 24,
		ReplicationFactor:      3,
		ShardCount:             16,
		PartitionPeriodSeconds: 3600,
	}
	data, err := rules.Marshal()
	require.NoError(t, err)

	decoded := &DatabaseRules{}
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, rules, decoded)

	empty := &DatabaseRules{}
	data, err = empty.Marshal()
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, decoded.Unmarshal(nil))
}

func TestDatabaseRulesSkipUnknownFields(t *testing.T) {
	rules := &DatabaseRules{Name: "metrics", ShardCount: 4}
	data, err := rules.Marshal()
	require.NoError(t, err)

	// fields a newer release might add
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)
	data = protowire.AppendTag(data, 10, protowire.BytesType)
	data = protowire.AppendString(data, "future")

	decoded := &DatabaseRules{}
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, rules, decoded)

	req := &GetWriterIdRequest{}
	require.NoError(t, req.Unmarshal(data))
}

func TestEmbeddedRulesCodec(t *testing.T) {
	req := &CreateDatabaseRequest{
		Rules: &DatabaseRules{Name: "metrics", ReplicationFactor: 1, ShardCount: 1},
	}
	data, err := req.Marshal()
	require.NoError(t, err)

	decodedReq := &CreateDatabaseRequest{}
	require.NoError(t, decodedReq.Unmarshal(data))
	require.Equal(t, req.Rules, decodedReq.Rules)

	resp := &GetDatabaseResponse{}
	data, err = resp.Marshal()
	require.NoError(t, err)
	require.Empty(t, data)

	decodedResp := &GetDatabaseResponse{}
	require.NoError(t, decodedResp.Unmarshal(data))
	require.Nil(t, decodedResp.Rules)
}

func TestListDatabasesResponseCodec(t *testing.T) {
	resp := &ListDatabasesResponse{Names: []string{"a", "b", "c"}}
	data, err := resp.Marshal()
	require.NoError(t, err)

	decoded := &ListDatabasesResponse{}
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, resp.Names, decoded.Names)

	decoded = &ListDatabasesResponse{}
	require.NoError(t, decoded.Unmarshal(nil))
	require.Nil(t, decoded.Names)
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	c := codec{}
	_, err := c.Marshal(struct{}{})
	require.Error(t, err)
	require.Error(t, c.Unmarshal(nil, struct{}{}))

	data, err := c.Marshal(&UpdateWriterIdRequest{Id: 7})
	require.NoError(t, err)
	decoded := &UpdateWriterIdRequest{}
	require.NoError(t, c.Unmarshal(data, decoded))
	require.Equal(t, WriterID(7), decoded.Id)
}

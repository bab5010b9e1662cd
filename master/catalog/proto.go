package catalog

import (
	"encoding/json"

	"github.com/openseries/seriesdb/proto"
)

const databaseInfoVersion = 1

const (
	// created and persisted, waiting for the storage engine to pick it up
	DatabaseStatusInit = DatabaseStatus(1)
	// provisioned on the storage engine and ready for writes
	DatabaseStatusNormal = DatabaseStatus(2)
)

type DatabaseStatus uint8

// databaseInfo is the persisted database record. Decoding ignores unknown
// fields, so records written by a newer release still load.
type databaseInfo struct {
	Version                uint8          `json:"version"`
	Sid                    proto.Sid      `json:"sid"`
	Name                   string         `json:"name"`
	RetentionSeconds       int64          `json:"retention_seconds"`
	ReplicationFactor      uint32         `json:"replication_factor"`
	ShardCount             uint32         `json:"shard_count"`
	PartitionPeriodSeconds int64          `json:"partition_period_seconds"`
	Status                 DatabaseStatus `json:"status"`
	CreateTime             int64          `json:"create_time"`
}

func (d *databaseInfo) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *databaseInfo) Unmarshal(data []byte) error {
	return json.Unmarshal(data, d)
}

func (d *databaseInfo) ToProtoRules() *proto.DatabaseRules {
	return &proto.DatabaseRules{
		Name:                   d.Name,
		RetentionSeconds:       d.RetentionSeconds,
		ReplicationFactor:      d.ReplicationFactor,
		ShardCount:             d.ShardCount,
		PartitionPeriodSeconds: d.PartitionPeriodSeconds,
	}
}

func (d *databaseInfo) ToDBRules(rules *proto.DatabaseRules) {
	d.Name = rules.Name
	d.RetentionSeconds = rules.RetentionSeconds
	d.ReplicationFactor = rules.ReplicationFactor
	d.ShardCount = rules.ShardCount
	d.PartitionPeriodSeconds = rules.PartitionPeriodSeconds
}

func (d *databaseInfo) Clone() *databaseInfo {
	info := *d
	return &info
}

package catalog

import (
	"strings"
	"unicode/utf8"

	apierrors "github.com/openseries/seriesdb/errors"
	"github.com/openseries/seriesdb/proto"
)

const maxDatabaseNameSize = 255

// validateRules is a pure check, the same rules always produce the same
// verdict no matter which node or moment runs it.
func validateRules(rules *proto.DatabaseRules) error {
	if rules == nil {
		return apierrors.ErrInvalidDatabaseName
	}
	if rules.Name == "" || len(rules.Name) > maxDatabaseNameSize || !utf8.ValidString(rules.Name) {
		return apierrors.ErrInvalidDatabaseName
	}
	// the storage layer keys records as prefix/name
	if strings.Contains(rules.Name, "/") {
		return apierrors.ErrInvalidDatabaseName
	}
	if rules.RetentionSeconds < 0 {
		return apierrors.ErrInvalidRetention
	}
	if rules.ReplicationFactor < 1 {
		return apierrors.ErrInvalidReplicaNum
	}
	if rules.ShardCount < 1 {
		return apierrors.ErrInvalidShardNum
	}
	if rules.PartitionPeriodSeconds < 0 {
		return apierrors.ErrInvalidPartitionPeriod
	}
	return nil
}

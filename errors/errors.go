// Copyright 2023 The SeriesDB Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package errors

import "errors"

var (
	ErrDatabaseDoesNotExist   = errors.New("the database does not exist")
	ErrDatabaseAlreadyCreated = errors.New("the database is already created")

	ErrInvalidDatabaseName    = errors.New("invalid database name")
	ErrInvalidRetention       = errors.New("retention can not be negative")
	ErrInvalidReplicaNum      = errors.New("replication factor must be at least 1")
	ErrInvalidShardNum        = errors.New("shard count must be at least 1")
	ErrInvalidPartitionPeriod = errors.New("partition period can not be negative")

	ErrWriterIDNotSet     = errors.New("writer id not set")
	ErrWriterIDAlreadySet = errors.New("writer id already set")
	ErrInvalidWriterID    = errors.New("invalid writer id")
)

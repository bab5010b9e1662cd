/*
 *
 * Copyright 2023 SeriesDB authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

/*

# SeriesDB master: the control plane of a multi-tenant time series store

## What the master is for

1, keep the catalog of databases and the rules attached to each of them

2, hand out and remember the writer identity of the ingest path

3, answer cheap read queries so the data plane never has to scan its own metadata

## Data Model

* Database, a named logical container for series data. Every database carries its rules: retention, replication factor, shard count and partition period.

* Sid, the internal numeric id of a database. Names are the public handle, sids never get reused.

* Writer identity, a single small integer that marks the current writer of the deployment. Whoever ingests has to own it.

## Architecture

The master is a single node. Every request lands on gRPC, operational surfaces (stats, metrics, profiling) are RESTful.

* all metadata lives in one rocksdb instance, one column family per module

* every write goes through a synced WAL before the caller gets an ack

* database provisioning runs asynchronously behind the create call, a background task drives the database from init to normal

## Building Blocks

* gRPC
* Rocksdb
* Prometheus

*/

package seriesdb

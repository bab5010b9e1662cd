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

package server

import (
	"github.com/openseries/seriesdb/master"
	"github.com/openseries/seriesdb/util/limiter"
)

type Config struct {
	MasterConfig   master.Config  `json:"master_config"`
	RpcLimitConfig limiter.Config `json:"rpc_limit_config"`
}

type Server struct {
	master *master.Master

	cfg *Config
}

func NewServer(cfg *Config) *Server {
	return &Server{
		master: master.NewMaster(&cfg.MasterConfig),
		cfg:    cfg,
	}
}

func (s *Server) Close() {
	s.master.Close()
}

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

package limiter

import (
	"errors"
	"sync/atomic"

	"golang.org/x/time/rate"
)

var ErrLimitExceeded = errors.New("limit exceeded")

type (
	Limiter interface {
		AcquireRead() error
		ReleaseRead()
		AcquireWrite() error
		ReleaseWrite()
		Status() Status
	}
	CountLimit interface {
		Running() int
		Acquire() error
		Release()
	}
	Config struct {
		ReadConcurrency  int `json:"read_concurrency"`
		WriteConcurrency int `json:"write_concurrency"`
		ReadQPS          int `json:"read_qps"`
		WriteQPS         int `json:"write_qps"`
	}
	Status struct {
		Config       Config
		ReadRunning  int
		WriteRunning int
	}
	limiter struct {
		config          Config
		readCountLimit  CountLimit
		writeCountLimit CountLimit
		rateRead        *rate.Limiter
		rateWrite       *rate.Limiter
	}
)

func NewLimiter(cfg Config) Limiter {
	limiter := &limiter{}
	if cfg.ReadConcurrency > 0 {
		limiter.readCountLimit = NewCountLimit(cfg.ReadConcurrency)
	}
	if cfg.WriteConcurrency > 0 {
		limiter.writeCountLimit = NewCountLimit(cfg.WriteConcurrency)
	}
	if cfg.ReadQPS > 0 {
		limiter.rateRead = rate.NewLimiter(rate.Limit(cfg.ReadQPS), cfg.ReadQPS)
	}
	if cfg.WriteQPS > 0 {
		limiter.rateWrite = rate.NewLimiter(rate.Limit(cfg.WriteQPS), cfg.WriteQPS)
	}
	limiter.config = cfg

	return limiter
}

func (lim *limiter) AcquireRead() error {
	if lim.readCountLimit != nil {
		if err := lim.readCountLimit.Acquire(); err != nil {
			return err
		}
	}
	if lim.rateRead != nil && !lim.rateRead.Allow() {
		if lim.readCountLimit != nil {
			lim.readCountLimit.Release()
		}
		return ErrLimitExceeded
	}
	return nil
}

func (lim *limiter) AcquireWrite() error {
	if lim.writeCountLimit != nil {
		if err := lim.writeCountLimit.Acquire(); err != nil {
			return err
		}
	}
	if lim.rateWrite != nil && !lim.rateWrite.Allow() {
		if lim.writeCountLimit != nil {
			lim.writeCountLimit.Release()
		}
		return ErrLimitExceeded
	}
	return nil
}

func (lim *limiter) ReleaseRead() {
	if lim.readCountLimit != nil {
		lim.readCountLimit.Release()
	}
}

func (lim *limiter) ReleaseWrite() {
	if lim.writeCountLimit != nil {
		lim.writeCountLimit.Release()
	}
}

func (lim *limiter) Status() Status {
	st := Status{
		Config: lim.config,
	}

	if lim.readCountLimit != nil {
		st.ReadRunning = lim.readCountLimit.Running()
	}
	if lim.writeCountLimit != nil {
		st.WriteRunning = lim.writeCountLimit.Running()
	}

	return st
}

const minusOne = ^uint32(0)

type countLimit struct {
	limit   uint32
	current uint32
}

// NewCountLimit returns limiter with concurrent n
func NewCountLimit(n int) CountLimit {
	return &countLimit{limit: uint32(n)}
}

func (l *countLimit) Running() int {
	return int(atomic.LoadUint32(&l.current))
}

func (l *countLimit) Acquire() error {
	if atomic.AddUint32(&l.current, 1) > l.limit {
		atomic.AddUint32(&l.current, minusOne)
		return ErrLimitExceeded
	}
	return nil
}

func (l *countLimit) Release() {
	atomic.AddUint32(&l.current, minusOne)
}

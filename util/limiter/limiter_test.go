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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimiter(t *testing.T) {
	cfg := Config{
		ReadConcurrency:  1,
		WriteConcurrency: 2,
	}
	l := NewLimiter(cfg)
	{
		require.NoError(t, l.AcquireRead())
		require.Equal(t, ErrLimitExceeded, l.AcquireRead())
		require.Equal(t, 1, l.Status().ReadRunning)
		l.ReleaseRead()
		require.Equal(t, 0, l.Status().ReadRunning)
		require.NoError(t, l.AcquireRead())
		l.ReleaseRead()
	}
	{
		require.NoError(t, l.AcquireWrite())
		require.NoError(t, l.AcquireWrite())
		require.Equal(t, ErrLimitExceeded, l.AcquireWrite())
		require.Equal(t, 2, l.Status().WriteRunning)
		l.ReleaseWrite()
		l.ReleaseWrite()
		require.Equal(t, 0, l.Status().WriteRunning)
	}
}

func TestLimiterQPS(t *testing.T) {
	l := NewLimiter(Config{ReadQPS: 1})

	// burst of one, a second acquire within the same second is rejected
	require.NoError(t, l.AcquireRead())
	l.ReleaseRead()
	require.Equal(t, ErrLimitExceeded, l.AcquireRead())
}

func TestLimiterQPSWithConcurrency(t *testing.T) {
	l := NewLimiter(Config{ReadConcurrency: 1, ReadQPS: 1})

	require.NoError(t, l.AcquireRead())
	l.ReleaseRead()

	// the rate gate rejects, the concurrency slot has to be put back
	require.Equal(t, ErrLimitExceeded, l.AcquireRead())
	require.Equal(t, 0, l.Status().ReadRunning)
}

func TestLimiterUnlimited(t *testing.T) {
	l := NewLimiter(Config{})
	for i := 0; i < 10; i++ {
		require.NoError(t, l.AcquireRead())
		require.NoError(t, l.AcquireWrite())
	}
	l.ReleaseRead()
	l.ReleaseWrite()
	require.Equal(t, 0, l.Status().ReadRunning)
	require.Equal(t, 0, l.Status().WriteRunning)
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PerfStats_01(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	// Redirect the standard logger for the duration of this test.
	std := log.StandardLogger()
	out, level, hooks := std.Out, std.Level, std.Hooks
	std.SetOutput(logger.Out)
	std.SetLevel(log.DebugLevel)
	std.ReplaceHooks(log.LevelHooks{})
	std.AddHook(hook)
	//
	defer func() {
		std.SetOutput(out)
		std.SetLevel(level)
		std.ReplaceHooks(hooks)
	}()
	//
	stats := NewPerfStats()
	stats.Log("Example 1")
	//
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, "Example 1 complete", entry.Message)
	assert.Contains(t, entry.Data, "elapsed")
	assert.Contains(t, entry.Data, "alloc")
	assert.GreaterOrEqual(t, stats.Elapsed().Nanoseconds(), int64(0))
}

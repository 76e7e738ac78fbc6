// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glimt/glimt/core"
)

func TestNewTimeCapped(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{FramesPerSecond: 60, EventPollDelay: 5})
	assert.Equal(t, 60, ts.Fps())
	assert.NotNil(t, ts.FpsTicker())
	assert.NotNil(t, ts.EventTicker())
}

func TestNewTimeUncapped(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{})
	assert.Equal(t, 0, ts.Fps())
	assert.NotNil(t, ts.FpsTicker())
	assert.NotNil(t, ts.EventTicker())
}

// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/vulkan-go/vulkan"

	"github.com/glimt/glimt/core"
)

func TestAsSurfaceErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		result vk.Result
		want   core.SurfaceError
		bad    bool
	}{
		{"success", vk.Success, 0, false},
		{"suboptimal is not an error", vk.Suboptimal, 0, false},
		{"surface lost", vk.ErrorSurfaceLost, core.SurfaceLost, true},
		{"out of host memory", vk.ErrorOutOfHostMemory, core.SurfaceOutOfMemory, true},
		{"out of device memory", vk.ErrorOutOfDeviceMemory, core.SurfaceOutOfMemory, true},
		{"out of date", vk.ErrorOutOfDate, core.SurfaceOutdated, true},
		{"timeout", vk.Timeout, core.SurfaceTimeout, true},
		{"not ready", vk.NotReady, core.SurfaceTimeout, true},
		{"device lost falls through to other", vk.ErrorDeviceLost, core.SurfaceOther, true},
		{"validation failure falls through to other", vk.ErrorValidationFailed, core.SurfaceOther, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, bad := core.AsSurfaceError(tc.result)
			assert.Equal(t, tc.bad, bad)
			if tc.bad {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSurfaceErrorPolicyTable(t *testing.T) {
	assert.Equal(t, core.PolicyReconfigure, core.SurfaceLost.Policy())
	assert.Equal(t, core.PolicyTerminate, core.SurfaceOutOfMemory.Policy())
	assert.Equal(t, core.PolicyRetry, core.SurfaceOutdated.Policy())
	assert.Equal(t, core.PolicyRetry, core.SurfaceTimeout.Policy())
	assert.Equal(t, core.PolicyRetry, core.SurfaceOther.Policy())
}

func TestSurfaceErrorMessages(t *testing.T) {
	variants := []core.SurfaceError{
		core.SurfaceLost,
		core.SurfaceOutOfMemory,
		core.SurfaceOutdated,
		core.SurfaceTimeout,
		core.SurfaceOther,
	}
	seen := map[string]bool{}
	for _, v := range variants {
		msg := v.Error()
		assert.NotEmpty(t, msg)
		seen[msg] = true
	}
	assert.Len(t, seen, len(variants), "variants must not share messages")
}

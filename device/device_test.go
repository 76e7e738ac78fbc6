// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glimt/glimt/device"
)

func TestHasExtension(t *testing.T) {
	info := device.PhysicalDeviceInfo{
		Name:       "llvmpipe",
		Extensions: []string{"VK_KHR_swapchain", "VK_KHR_maintenance1"},
	}

	assert.True(t, info.HasExtension("VK_KHR_swapchain"))
	assert.False(t, info.HasExtension("VK_KHR_display"))
}

func TestHasExtensionEmpty(t *testing.T) {
	assert.False(t, device.PhysicalDeviceInfo{}.HasExtension("VK_KHR_swapchain"))
}

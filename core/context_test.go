// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/vulkan-go/vulkan"
)

func TestResizeExtentAppliesValidSizes(t *testing.T) {
	current := vk.Extent2D{Width: 800, Height: 600}

	next, ok := resizeExtent(current, 1280, 720)
	assert.True(t, ok)
	assert.Equal(t, vk.Extent2D{Width: 1280, Height: 720}, next)
}

func TestResizeExtentDropsZeroDimensions(t *testing.T) {
	current := vk.Extent2D{Width: 800, Height: 600}

	for _, size := range [][2]uint32{{0, 600}, {800, 0}, {0, 0}} {
		next, ok := resizeExtent(current, size[0], size[1])
		assert.False(t, ok, "zero dimension must be dropped")
		assert.Equal(t, current, next, "previous configuration stays in effect")
	}
}

func TestResizeExtentIsIdempotent(t *testing.T) {
	current := vk.Extent2D{Width: 800, Height: 600}

	once, ok := resizeExtent(current, 1024, 768)
	assert.True(t, ok)
	twice, ok := resizeExtent(once, 1024, 768)
	assert.True(t, ok)
	assert.Equal(t, once, twice)
}

func TestRenderContextResizePolicy(t *testing.T) {
	v := &VulkanRenderContext{currentSurfaceWidth: 800, currentSurfaceHeight: 600}

	v.Resize(0, 900)
	w, h := v.Size()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)

	v.Resize(1024, 768)
	w, h = v.Size()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)

	v.Resize(1024, 768)
	w, h = v.Size()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)
}

func TestClearColorIsFixed(t *testing.T) {
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1.0}, clearColor)
}

func TestRenderContextInputIsUnhandled(t *testing.T) {
	v := &VulkanRenderContext{}
	assert.False(t, v.Input(nil), "input routing is reserved, nothing is consumed")
}

func TestRenderContextSizeTracksConfiguration(t *testing.T) {
	v := &VulkanRenderContext{currentSurfaceWidth: 640, currentSurfaceHeight: 480}
	w, h := v.Size()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
}

// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/glimt/glimt/core"
)

// scriptedContext is a RenderContext whose Render calls pop errors off
// a prepared script. It records every call the driver makes.
type scriptedContext struct {
	script []error

	width  uint32
	height uint32

	updates int
	renders int
	resizes [][2]uint32
}

func newScriptedContext(width, height uint32, script ...error) *scriptedContext {
	return &scriptedContext{script: script, width: width, height: height}
}

func (c *scriptedContext) Initialise() error { return nil }

func (c *scriptedContext) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	c.width, c.height = width, height
	c.resizes = append(c.resizes, [2]uint32{width, height})
}

func (c *scriptedContext) Render() error {
	c.renders++
	if len(c.script) == 0 {
		return nil
	}
	err := c.script[0]
	c.script = c.script[1:]
	return err
}

func (c *scriptedContext) Update()                    { c.updates++ }
func (c *scriptedContext) Input(event sdl.Event) bool { return false }
func (c *scriptedContext) Size() (uint32, uint32)     { return c.width, c.height }
func (c *scriptedContext) Destroy()                   {}

func TestStepRendersAndContinues(t *testing.T) {
	ctx := newScriptedContext(800, 600)
	driver := core.NewFrameDriver(ctx)

	assert.True(t, driver.Step())
	assert.Equal(t, 1, ctx.updates, "update runs before render every frame")
	assert.Equal(t, 1, ctx.renders)
	assert.Empty(t, ctx.resizes)
}

func TestStepReconfiguresOnSurfaceLost(t *testing.T) {
	ctx := newScriptedContext(1024, 768, core.SurfaceLost)
	driver := core.NewFrameDriver(ctx)

	assert.True(t, driver.Step(), "a lost surface is recovered, not fatal")
	require.Len(t, ctx.resizes, 1, "exactly one resize per lost surface")
	assert.Equal(t, [2]uint32{1024, 768}, ctx.resizes[0], "recovery uses the current stored size")

	assert.True(t, driver.Step())
	assert.Equal(t, 2, ctx.renders)
	assert.Len(t, ctx.resizes, 1)
}

func TestStepStopsOnOutOfMemory(t *testing.T) {
	ctx := newScriptedContext(800, 600, core.SurfaceOutOfMemory)
	driver := core.NewFrameDriver(ctx)

	for driver.Step() {
	}

	assert.Equal(t, 1, ctx.renders, "no further render after out of memory")
	assert.Empty(t, ctx.resizes)
}

func TestStepRetriesTransientErrors(t *testing.T) {
	for _, serr := range []core.SurfaceError{core.SurfaceOutdated, core.SurfaceTimeout, core.SurfaceOther} {
		ctx := newScriptedContext(800, 600, serr)
		driver := core.NewFrameDriver(ctx)

		assert.True(t, driver.Step(), serr.Error())
		assert.Empty(t, ctx.resizes, "transient errors mutate no state")
		assert.Equal(t, uint32(800), ctx.width)
		assert.Equal(t, uint32(600), ctx.height)

		assert.True(t, driver.Step(), "next frame renders normally")
		assert.Equal(t, 2, ctx.renders)
	}
}

func TestStepToleratesUnknownErrors(t *testing.T) {
	ctx := newScriptedContext(800, 600, errors.New("queue submit hiccup"))
	driver := core.NewFrameDriver(ctx)

	assert.True(t, driver.Step())
	assert.Empty(t, ctx.resizes)
}

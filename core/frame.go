// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// NewFrameDriver creates a frame driver owning the given context.
func NewFrameDriver(context RenderContext) *FrameDriver {
	return &FrameDriver{context: context}
}

// FrameDriver steps a RenderContext once per event loop iteration and
// applies the per-variant recovery policy to presentation failures.
// It holds the only reference to the context while the loop runs.
type FrameDriver struct {
	context RenderContext
}

// Step runs one frame: update, render, recover. It reports whether the
// loop should keep running. Only an out of memory condition stops the
// loop, every other failure is recovered or retried next frame.
func (d *FrameDriver) Step() bool {
	d.context.Update()

	err := d.context.Render()
	if err == nil {
		return true
	}

	var serr SurfaceError
	if !errors.As(err, &serr) {
		log.WithError(err).Error("Render failed")
		return true
	}

	switch serr.Policy() {
	case PolicyReconfigure:
		// Stale surface configuration, reapply with the current size
		// and retry next frame.
		width, height := d.context.Size()
		log.WithError(serr).Warnf("Reconfiguring surface at %dx%d", width, height)
		d.context.Resize(width, height)
		return true
	case PolicyTerminate:
		log.WithError(serr).Error("Presentation out of memory, stopping frame loop")
		return false
	default:
		// Outdated, timeout and the rest resolve themselves on the
		// next acquire.
		log.WithError(serr).Warn("Transient presentation error")
		return true
	}
}

// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	vk "github.com/vulkan-go/vulkan"
)

// SurfaceError classifies a failed surface acquire, submit or present.
// It is a closed set, every variant carries an explicit recovery policy
// so the frame driver never has to guess from a raw API result.
type SurfaceError int

// Surface error variants
const (
	// SurfaceLost means the surface configuration went stale and has
	// to be reapplied before presenting again
	SurfaceLost SurfaceError = iota

	// SurfaceOutOfMemory means the driver ran out of host or device
	// memory while presenting
	SurfaceOutOfMemory

	// SurfaceOutdated means the swapchain no longer matches the
	// surface, usually right around a resize
	SurfaceOutdated

	// SurfaceTimeout means no image became available in time
	SurfaceTimeout

	// SurfaceOther covers every remaining presentation failure
	SurfaceOther
)

// RecoveryPolicy tells the frame driver what to do about a SurfaceError.
type RecoveryPolicy int

// Per-variant recovery policies
const (
	// PolicyReconfigure reapplies the surface configuration with the
	// current stored size and retries next frame
	PolicyReconfigure RecoveryPolicy = iota

	// PolicyTerminate stops the frame loop deliberately
	PolicyTerminate

	// PolicyRetry logs and waits for the next frame, the next acquire
	// typically succeeds on its own
	PolicyRetry
)

var surfaceErrorNames = map[SurfaceError]string{
	SurfaceLost:        "surface lost",
	SurfaceOutOfMemory: "out of memory",
	SurfaceOutdated:    "surface outdated",
	SurfaceTimeout:     "surface timeout",
	SurfaceOther:       "presentation failed",
}

func (e SurfaceError) Error() string {
	if name, ok := surfaceErrorNames[e]; ok {
		return name
	}
	return "presentation failed"
}

// Policy returns the recovery policy for the variant.
func (e SurfaceError) Policy() RecoveryPolicy {
	switch e {
	case SurfaceLost:
		return PolicyReconfigure
	case SurfaceOutOfMemory:
		return PolicyTerminate
	case SurfaceOutdated, SurfaceTimeout, SurfaceOther:
		return PolicyRetry
	}
	return PolicyRetry
}

// AsSurfaceError maps a Vulkan result onto the surface error set.
// Success and suboptimal results report ok, rendering proceeds on a
// suboptimal swapchain until the surface reports outdated.
func AsSurfaceError(result vk.Result) (SurfaceError, bool) {
	switch result {
	case vk.Success, vk.Suboptimal:
		return 0, false
	case vk.ErrorSurfaceLost:
		return SurfaceLost, true
	case vk.ErrorOutOfHostMemory, vk.ErrorOutOfDeviceMemory:
		return SurfaceOutOfMemory, true
	case vk.ErrorOutOfDate:
		return SurfaceOutdated, true
	case vk.Timeout, vk.NotReady:
		return SurfaceTimeout, true
	}
	return SurfaceOther, true
}

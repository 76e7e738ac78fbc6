// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	vk "github.com/vulkan-go/vulkan"

	"github.com/glimt/glimt/device"
)

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each Physical Device
	// along with info about those devices
	PhysicalDevicesInfo() []device.PhysicalDeviceInfo

	// AvailableDevices returns handles of Physical Devices
	// from the Vulkan API
	AvailableDevices() []vk.PhysicalDevice

	// SetSurface sets the window surface for rendering
	SetSurface(unsafe.Pointer)

	// Surface returns the window surface, if it's not set
	// it should return a valid but empty surface
	Surface() vk.Surface

	// Extensions returns available instance extensions
	Extensions() []string

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// RenderContext owns the logical device, queue, surface configuration
// and the one fixed pipeline, and presents frames to the window surface.
// It's created only with internal values set, it needs to be initialised
// with Initialise() before use. All methods must be called from the
// goroutine that drives the event loop.
type RenderContext interface {
	// Initialise negotiates a device against the surface and sets up
	// the swapchain, the fixed pipeline and everything in between.
	// Failure here is fatal, the context is not usable afterwards.
	Initialise() error

	// Resize reconfigures the surface to the given size in pixels.
	// A zero in either dimension is dropped and the previous
	// configuration stays in effect.
	Resize(width, height uint32)

	// Render acquires the next surface image, submits one frame and
	// presents it. Presentation failures are reported as SurfaceError
	// values.
	Render() error

	// Update advances per-frame state. Currently a placeholder.
	Update()

	// Input reports whether the context consumed the given window event.
	Input(event sdl.Event) bool

	// Size returns the last stored surface size in pixels.
	Size() (width, height uint32)

	// Destroy destroys internal members
	Destroy()
}

// Shader represents a shader module usable by a RenderContext.
type Shader interface {
	// Type returns the pipeline stage this shader belongs to
	Type() ShaderType

	// Name is the identifier the shader was loaded under
	Name() string

	// ShaderModule returns the underlying API shader handle
	ShaderModule() interface{}

	// Destroy destroys internal members
	Destroy()
}

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

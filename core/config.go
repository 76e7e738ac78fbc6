// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Configuration defines a global application configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Instance InstanceConfiguration
	Context  ContextConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the window event poll interval in milliseconds
	EventPollDelay int
}

// InstanceConfiguration is used to configure the Vulkan instance
type InstanceConfiguration struct {
	// DebugMode loads validation layers
	DebugMode bool

	Extensions []string
	Layers     []string
}

// ContextConfiguration is used to configure the render context
type ContextConfiguration struct {
	SwapchainSize    uint32
	DeviceExtensions []string

	ScreenWidth  uint32
	ScreenHeight uint32

	// ShaderDirectory overrides the embedded shader set with compiled
	// .spv files from disk. Empty means embedded.
	ShaderDirectory string
}

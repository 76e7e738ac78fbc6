// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"runtime"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/glimt/glimt/core"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	vkInstance core.Instance
	vkContext  core.RenderContext
	sdlWindow  *sdl.Window
)

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  5,
	},
	Context: core.ContextConfiguration{
		ScreenWidth:   800,
		ScreenHeight:  600,
		SwapchainSize: 3,
		DeviceExtensions: []string{
			"VK_KHR_swapchain",
		},
	},
}

func configureFromEnv() {
	level, err := log.ParseLevel(envy.Get("GLIMT_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	configuration.Instance.DebugMode = envy.Get("GLIMT_DEBUG", "") != ""
	configuration.Context.ShaderDirectory = envy.Get("GLIMT_SHADER_DIR", "")
}

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow("Glimt",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Context.ScreenWidth),
		int32(configuration.Context.ScreenHeight),
		sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		log.Fatal("sdl.CreateWindow(): " + err.Error())
	}
	return window
}

func main() {
	configureFromEnv()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal("sdl.Init(): " + err.Error())
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatal("sdl.VulkanLoadLibrary(): " + err.Error())
	}
	defer sdl.VulkanUnloadLibrary()

	sdlWindow = newWindow()
	defer sdlWindow.Destroy()

	{
		cfg := configuration.Instance
		cfg.Extensions = append(cfg.Extensions, sdlWindow.VulkanGetInstanceExtensions()...)

		vi, err := core.NewVulkanInstance(core.DefaultVulkanApplicationInfo, sdl.VulkanGetVkGetInstanceProcAddr(), cfg)
		if err != nil {
			log.Fatal(err)
		}
		vkInstance = vi
	}
	defer vkInstance.Destroy()

	suitable := false
	for _, info := range vkInstance.PhysicalDevicesInfo() {
		log.WithFields(log.Fields{
			"vendor": info.VendorID,
			"driver": info.DriverVersion,
			"memory": info.Memory,
		}).Debugf("Physical device: %s", info.Name)
		if info.HasExtension("VK_KHR_swapchain") {
			suitable = true
		}
	}
	if !suitable {
		log.Fatal("No physical device advertises VK_KHR_swapchain")
	}

	if srf, err := sdlWindow.VulkanCreateSurface(vkInstance.Inner()); err != nil {
		log.Fatal("sdl.VulkanCreateSurface(): " + err.Error())
	} else {
		vkInstance.SetSurface(srf)
	}

	var contextErr error
	vkContext, contextErr = core.NewVulkanRenderContext(vkInstance, configuration.Context)
	if contextErr != nil {
		log.Fatal(contextErr)
	}

	if err := vkContext.Initialise(); err != nil {
		log.Fatal(err)
	}
	defer vkContext.Destroy()

	driver := core.NewFrameDriver(vkContext)
	timeService := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("Event loop exited")
			break EventLoop
		case <-timeService.FpsTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				if vkContext.Input(event) {
					continue
				}
				switch et := event.(type) {
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						vkContext.Resize(uint32(et.Data1), uint32(et.Data2))
					}
				case *sdl.KeyboardEvent:
					if et.Type == sdl.KEYUP && et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
			if !driver.Step() {
				exitC <- struct{}{}
			}
		}
	}
}

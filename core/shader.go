// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobuffalo/packr"
	vk "github.com/vulkan-go/vulkan"
)

// shaderBox carries the compiled shader pair embedded at build time.
var shaderBox = packr.NewBox("../shaders")

const shaderSuffix = ".spv"

// shaderTypeForFile decides the pipeline stage from the file name.
// Compiled shaders are named <name>.<stage>.spv, anything else is
// skipped. Only compiled shaders carry the .spv extension.
func shaderTypeForFile(name string) (ShaderType, bool) {
	if !strings.HasSuffix(name, shaderSuffix) {
		return UnknownShaderType, false
	}
	nodes := strings.Split(strings.TrimSuffix(filepath.Base(name), shaderSuffix), ".")
	if len(nodes) != 2 {
		return UnknownShaderType, false
	}
	switch nodes[len(nodes)-1] {
	case "vert":
		return VertexShaderType, true
	case "frag":
		return FragmentShaderType, true
	}
	return UnknownShaderType, false
}

// loadShaders builds the fixed shader set for the context. The embedded
// box is the default, a configured ShaderDirectory overrides it with
// compiled .spv files from disk.
func (v *VulkanRenderContext) loadShaders() error {
	var shaders []Shader

	load := func(name string, contents []byte, shaderType ShaderType) error {
		shader, err := NewVulkanShader(name, contents, shaderType, v.logicalDevice)
		if err != nil {
			return err
		}
		shaders = append(shaders, shader)
		return nil
	}

	if dir := v.configuration.ShaderDirectory; dir != "" {
		if err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			shaderType, ok := shaderTypeForFile(f.Name())
			if !ok {
				return nil
			}
			contents, err := ioutil.ReadFile(path)
			if err != nil {
				return err
			}
			return load(f.Name(), contents, shaderType)
		}); err != nil {
			return err
		}
	} else {
		for _, name := range shaderBox.List() {
			shaderType, ok := shaderTypeForFile(name)
			if !ok {
				continue
			}
			if err := load(name, shaderBox.Bytes(name), shaderType); err != nil {
				return err
			}
		}
	}

	if len(shaders) == 0 {
		return errors.New("core.loadShaders(): no compiled shaders found")
	}
	v.shaders = shaders
	return nil
}

// NewVulkanShader creates a Vulkan specific shader wrapper from
// compiled SPIR-V contents
func NewVulkanShader(name string, contents []byte, shaderType ShaderType, device vk.Device) (Shader, error) {
	shaderName := strings.Split(filepath.Base(name), ".")[0]

	smci := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(contents)),
		PCode:    SliceUint32(contents),
	}

	var shader vk.ShaderModule
	if err := vk.Error(vk.CreateShaderModule(device, &smci, nil, &shader)); err != nil {
		return nil, fmt.Errorf("vk.CreateShaderModule(type %d): %s", shaderType, err.Error())
	}

	return &VulkanShader{
		shader:     shader,
		shaderType: shaderType,
		name:       shaderName,
		device:     device,
	}, nil
}

// VulkanShader is a Vulkan specific shader
type VulkanShader struct {
	name       string
	shaderType ShaderType
	device     vk.Device
	shader     vk.ShaderModule
}

// Type implements interface
func (v VulkanShader) Type() ShaderType {
	return v.shaderType
}

// ShaderModule is an accessor to the internal vk.ShaderModule
func (v VulkanShader) ShaderModule() interface{} {
	return v.shader
}

// Name implements interface
func (v VulkanShader) Name() string {
	return v.name
}

// Destroy implements interface
func (v VulkanShader) Destroy() {
	vk.DestroyShaderModule(v.device, v.shader, nil)
}

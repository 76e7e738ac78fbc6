// Copyright (c) 2026 the glimt authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderTypeForFile(t *testing.T) {
	cases := []struct {
		name string
		want ShaderType
		ok   bool
	}{
		{"triangle.vert.spv", VertexShaderType, true},
		{"triangle.frag.spv", FragmentShaderType, true},
		{"shaders/triangle.vert.spv", VertexShaderType, true},
		{"triangle.vert", UnknownShaderType, false},
		{"triangle.comp.spv", UnknownShaderType, false},
		{"triangle.spv", UnknownShaderType, false},
		{"a.b.vert.spv", UnknownShaderType, false},
		{"", UnknownShaderType, false},
	}

	for _, tc := range cases {
		got, ok := shaderTypeForFile(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestEmbeddedShaderSetIsComplete(t *testing.T) {
	// The embedded box must carry the GLSL sources. Compiled .spv
	// pairs come from `make shaders` and are optional in a checkout.
	assert.True(t, shaderBox.Has("triangle.vert"))
	assert.True(t, shaderBox.Has("triangle.frag"))
}

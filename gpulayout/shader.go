package gpulayout

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/glm"
)

//go:embed shaders/transform.wgsl
var transformShaderWGSL string

// Entry points of the transform shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShaderSource returns the WGSL source of the transform shader.
func ShaderSource() string {
	return transformShaderWGSL
}

// CompileShader compiles the transform shader to SPIR-V.
func CompileShader() ([]byte, error) {
	spirv, err := naga.Compile(transformShaderWGSL)
	if err != nil {
		glm.Logger().Warn("gpulayout: transform shader compilation failed", "err", err)
		return nil, fmt.Errorf("gpulayout: compile transform shader: %w", err)
	}
	glm.Logger().Debug("gpulayout: compiled transform shader", "spirv_bytes", len(spirv))
	return spirv, nil
}

// CompileShaderWords compiles the transform shader and returns the SPIR-V
// as little-endian 32-bit words, the form shader module descriptors take.
func CompileShaderWords() ([]uint32, error) {
	spirv, err := CompileShader()
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words, nil
}

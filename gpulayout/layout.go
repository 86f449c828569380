package gpulayout

import "github.com/gogpu/gputypes"

// MeshVertexStride is the stride of the mesh vertices transform.wgsl reads:
// a vec3 position followed by a vec3 normal.
const MeshVertexStride = 24

// BindGroupLayoutEntry returns the entry for a Transforms uniform buffer at
// the given binding, visible to the vertex and fragment stages.
func BindGroupLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}

// UniformBufferUsage is the usage for a buffer holding Transforms that is
// rewritten every frame.
func UniformBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
}

// InstanceBufferUsage is the usage for a buffer filled by EncodeInstances.
func InstanceBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
}

// InstanceBufferLayout describes a per-instance mat4x4<f32> as four
// consecutive vec4<f32> attributes, one per column, starting at shader
// location firstLocation.
func InstanceBufferLayout(firstLocation uint32) gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 4)
	for c := range attrs {
		attrs[c] = gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x4,
			Offset:         uint64(c * columnStride),
			ShaderLocation: firstLocation + uint32(c),
		}
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: Mat4UniformSize,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes:  attrs,
	}
}

// MeshVertexLayout describes the per-vertex position and normal read by
// transform.wgsl at locations 0 and 1.
func MeshVertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: MeshVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
		},
	}
}

// PipelineVertexLayouts returns the vertex buffer layouts transform.wgsl
// expects: mesh vertices in slot 0 and instance matrices in slot 1.
func PipelineVertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		MeshVertexLayout(),
		InstanceBufferLayout(2),
	}
}

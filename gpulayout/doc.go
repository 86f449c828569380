// Package gpulayout packs glm matrices into the byte layouts GPU shaders
// read, and describes those layouts with gputypes.
//
// WGSL uniform buffers follow the WGSL host-shareable layout rules: a
// mat4x4<f32> is four 16-byte columns (64 bytes), and a mat3x3<f32> is three
// vec3 columns each padded to 16 bytes (48 bytes). glm stores matrices
// column-major already, so encoding is a precision narrowing plus padding;
// nothing is transposed.
//
// The package stops at bytes and descriptors. Creating buffers, writing
// them to a queue and binding them belong to the renderer.
//
// # Usage
//
//	var tr gpulayout.Transforms[float32]
//	tr.Update(&model, &view, &proj)
//	buf := make([]byte, gpulayout.TransformsSize)
//	if _, err := tr.Encode(buf); err != nil {
//	    return err
//	}
//	queue.WriteBuffer(uniformBuffer, 0, buf)
//
// The embedded transform.wgsl shader consumes exactly this layout at
// @group(0) @binding(0), plus per-instance model matrices described by
// InstanceBufferLayout.
package gpulayout

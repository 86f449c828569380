package gpulayout

import "github.com/gogpu/glm"

// TransformsSize is the size of the WGSL Transforms uniform struct:
// three mat4x4<f32> followed by one mat3x3<f32>.
const TransformsSize = 3*Mat4UniformSize + Mat3UniformSize

// Byte offsets of the Transforms members.
const (
	ModelOffset      = 0
	ViewOffset       = Mat4UniformSize
	ProjectionOffset = 2 * Mat4UniformSize
	NormalOffset     = 3 * Mat4UniformSize
)

// Transforms mirrors the Transforms uniform struct of transform.wgsl.
type Transforms[T glm.Float] struct {
	Model      glm.Mat4[T]
	View       glm.Mat4[T]
	Projection glm.Mat4[T]

	// Normal transforms object-space normals to world space. Update keeps
	// it in sync with Model.
	Normal glm.Mat3[T]
}

// NewTransforms returns Transforms with every matrix set to the identity.
func NewTransforms[T glm.Float]() Transforms[T] {
	return Transforms[T]{
		Model:      glm.Ident4[T](),
		View:       glm.Ident4[T](),
		Projection: glm.Ident4[T](),
		Normal:     glm.Ident3[T](),
	}
}

// Update copies the three matrices and recomputes Normal from model.
// A model whose upper 3x3 is singular yields its transpose as Normal.
func (t *Transforms[T]) Update(model, view, projection *glm.Mat4[T]) {
	t.Model.Set(model)
	t.View.Set(view)
	t.Projection.Set(projection)
	t.Normal.SetNormal(model)
}

// MVP stores Projection · View · Model in dest and returns dest.
func (t *Transforms[T]) MVP(dest *glm.Mat4[T]) *glm.Mat4[T] {
	return t.Projection.MulInto(&t.View, dest).Mul(&t.Model)
}

// Encode writes t into dst in WGSL uniform layout and returns
// TransformsSize.
func (t *Transforms[T]) Encode(dst []byte) (int, error) {
	if len(dst) < TransformsSize {
		return 0, shortBuffer(TransformsSize, len(dst))
	}
	// Sizes were checked above; the per-member encoders cannot fail.
	_, _ = EncodeMat4(dst[ModelOffset:], &t.Model)
	_, _ = EncodeMat4(dst[ViewOffset:], &t.View)
	_, _ = EncodeMat4(dst[ProjectionOffset:], &t.Projection)
	_, _ = EncodeMat3(dst[NormalOffset:], &t.Normal)
	return TransformsSize, nil
}

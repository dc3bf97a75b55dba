package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform3D maps vectors from one 3D frame into another as
// (R·v + t)·s, with R a unit quaternion, t a translation and s a uniform
// non-zero scale. The zero value has scale 0 and is not usable; construct
// through Identity3D, New3D or the part-wise constructors.
type Transform3D struct {
	rot   mgl64.Quat // unit rotation
	trans mgl64.Vec3 // translation, applied after rotation
	scale float64    // uniform scale, applied last; never zero
}

// Identity3D returns the neutral transform: identity rotation, zero
// translation, scale 1.
func Identity3D() Transform3D {
	return Transform3D{rot: mgl64.QuatIdent(), scale: 1}
}

// New3D builds a transform from all three parts. The rotation is
// normalized on entry.
func New3D(rot mgl64.Quat, trans mgl64.Vec3, scale float64) Transform3D {
	return Transform3D{rot: rot.Normalize(), trans: trans, scale: scale}
}

// NewRotation3D builds a pure rotation (normalized on entry).
func NewRotation3D(rot mgl64.Quat) Transform3D {
	return New3D(rot, mgl64.Vec3{}, 1)
}

// NewTranslation3D builds a pure translation.
func NewTranslation3D(trans mgl64.Vec3) Transform3D {
	t := Identity3D()
	t.trans = trans

	return t
}

// NewScaling3D builds a pure uniform scaling.
func NewScaling3D(scale float64) Transform3D {
	t := Identity3D()
	t.scale = scale

	return t
}

// Rotation returns the rotation part.
func (t Transform3D) Rotation() mgl64.Quat { return t.rot }

// Translation returns the translation part.
func (t Transform3D) Translation() mgl64.Vec3 { return t.trans }

// Scaling returns the uniform scale factor.
func (t Transform3D) Scaling() float64 { return t.scale }

// SetRotation replaces the rotation part, normalizing it. Returns the
// receiver for chaining.
func (t *Transform3D) SetRotation(rot mgl64.Quat) *Transform3D {
	t.rot = rot.Normalize()

	return t
}

// Rotate pre-multiplies the rotation part by rot (rot is applied after the
// current rotation) and re-normalizes. Returns the receiver for chaining.
func (t *Transform3D) Rotate(rot mgl64.Quat) *Transform3D {
	t.rot = rot.Normalize().Mul(t.rot).Normalize()

	return t
}

// SetTranslation replaces the translation part. Returns the receiver.
func (t *Transform3D) SetTranslation(trans mgl64.Vec3) *Transform3D {
	t.trans = trans

	return t
}

// Translate accumulates trans onto the translation part. Returns the receiver.
func (t *Transform3D) Translate(trans mgl64.Vec3) *Transform3D {
	t.trans = t.trans.Add(trans)

	return t
}

// SetScale replaces the scale factor. Returns the receiver.
func (t *Transform3D) SetScale(scale float64) *Transform3D {
	t.scale = scale

	return t
}

// Scale multiplies the scale factor by scale. Returns the receiver.
func (t *Transform3D) Scale(scale float64) *Transform3D {
	t.scale *= scale

	return t
}

// SetIdentity resets rotation, translation and scale to neutral values.
// Returns the receiver for chaining.
func (t *Transform3D) SetIdentity() *Transform3D {
	*t = Identity3D()

	return t
}

// Normalize re-normalizes the rotation part only. Returns the receiver.
func (t *Transform3D) Normalize() *Transform3D {
	t.rot = t.rot.Normalize()

	return t
}

// Compose combines two transforms so that the result applies other first,
// then t:
//
//	t.Compose(other).TransformVec(v) == t.TransformVec(other.TransformVec(v))
//
// Closed form under T(v) = (R·v + t)·s:
//
//	R = R_t · R_other
//	s = s_t · s_other
//	t = R_t·t_other + t_t / s_other
//
// Complexity: O(1).
func (t Transform3D) Compose(other Transform3D) Transform3D {
	return Transform3D{
		rot:   t.rot.Mul(other.rot),
		trans: t.rot.Rotate(other.trans).Add(t.trans.Mul(1 / other.scale)),
		scale: t.scale * other.scale,
	}
}

// Invert inverts the transform in place, so that
// t.Compose(t.Inverse()) ≈ Identity3D(). A zero scale is a caller
// precondition violation (division by zero). Returns the receiver.
func (t *Transform3D) Invert() *Transform3D {
	t.rot = t.rot.Inverse()
	t.trans = t.rot.Rotate(t.trans).Mul(-t.scale)
	t.scale = 1 / t.scale

	return t
}

// Inverse returns the inverted transform, leaving the receiver untouched.
func (t Transform3D) Inverse() Transform3D {
	t.Invert()

	return t
}

// TransformVec maps v through the full pipeline (R·v + t)·s.
func (t Transform3D) TransformVec(v mgl64.Vec3) mgl64.Vec3 {
	return t.rot.Rotate(v).Add(t.trans).Mul(t.scale)
}

// RotateVec applies only the rotation stage. Direction vectors must use
// this (or strip the translation first) — they are never translated.
func (t Transform3D) RotateVec(v mgl64.Vec3) mgl64.Vec3 {
	return t.rot.Rotate(v)
}

// TranslateVec applies only the translation stage.
func (t Transform3D) TranslateVec(v mgl64.Vec3) mgl64.Vec3 {
	return v.Add(t.trans)
}

// ScaleVec applies only the scaling stage.
func (t Transform3D) ScaleVec(v mgl64.Vec3) mgl64.Vec3 {
	return v.Mul(t.scale)
}

// IsApprox reports whether the two transforms differ by less than eps in
// every part: rotation by coefficient distance, translation by Euclidean
// distance, scale by absolute difference.
func (t Transform3D) IsApprox(other Transform3D, eps float64) bool {
	return t.rot.ApproxEqualThreshold(other.rot, eps) &&
		t.trans.Sub(other.trans).Len() < eps &&
		math.Abs(t.scale-other.scale) < eps
}

// Affine returns the compact rotation+translation affine matrix. The scale
// factor is deliberately excluded: cluster re-normalization applies it to
// parameter values, not to the frame matrix.
func (t Transform3D) Affine() mgl64.Mat4 {
	m := t.rot.Mat4()
	m.SetCol(3, mgl64.Vec4{t.trans[0], t.trans[1], t.trans[2], 1})

	return m
}

// String renders the transform for logs and debugging. The rotation
// coefficients are listed x y z w. Not a parsable persisted format.
func (t Transform3D) String() string {
	return fmt.Sprintf("Rotation:    %g %g %g %g\nTranslation: %g %g %g\nScale:       %g",
		t.rot.X(), t.rot.Y(), t.rot.Z(), t.rot.W,
		t.trans.X(), t.trans.Y(), t.trans.Z(),
		t.scale)
}

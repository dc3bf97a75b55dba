package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform2D is the planar counterpart of Transform3D: the rotation is a
// single angle in radians, kept in (−π, π]. The zero value has scale 0 and
// is not usable; construct through Identity2D, New2D or the part-wise
// constructors.
type Transform2D struct {
	angle float64    // rotation angle, radians, wrapped to (−π, π]
	trans mgl64.Vec2 // translation, applied after rotation
	scale float64    // uniform scale, applied last; never zero
}

// Identity2D returns the neutral planar transform.
func Identity2D() Transform2D {
	return Transform2D{scale: 1}
}

// New2D builds a planar transform from all three parts. The angle is
// wrapped into (−π, π] on entry.
func New2D(angle float64, trans mgl64.Vec2, scale float64) Transform2D {
	return Transform2D{angle: wrapAngle(angle), trans: trans, scale: scale}
}

// NewRotation2D builds a pure planar rotation.
func NewRotation2D(angle float64) Transform2D {
	return New2D(angle, mgl64.Vec2{}, 1)
}

// NewTranslation2D builds a pure planar translation.
func NewTranslation2D(trans mgl64.Vec2) Transform2D {
	t := Identity2D()
	t.trans = trans

	return t
}

// NewScaling2D builds a pure planar uniform scaling.
func NewScaling2D(scale float64) Transform2D {
	t := Identity2D()
	t.scale = scale

	return t
}

// Rotation returns the rotation angle in radians, in (−π, π].
func (t Transform2D) Rotation() float64 { return t.angle }

// Translation returns the translation part.
func (t Transform2D) Translation() mgl64.Vec2 { return t.trans }

// Scaling returns the uniform scale factor.
func (t Transform2D) Scaling() float64 { return t.scale }

// SetRotation replaces the rotation angle, wrapping it into (−π, π].
// Returns the receiver for chaining.
func (t *Transform2D) SetRotation(angle float64) *Transform2D {
	t.angle = wrapAngle(angle)

	return t
}

// Rotate adds angle to the rotation part and re-wraps. Returns the receiver.
func (t *Transform2D) Rotate(angle float64) *Transform2D {
	t.angle = wrapAngle(t.angle + angle)

	return t
}

// SetTranslation replaces the translation part. Returns the receiver.
func (t *Transform2D) SetTranslation(trans mgl64.Vec2) *Transform2D {
	t.trans = trans

	return t
}

// Translate accumulates trans onto the translation part. Returns the receiver.
func (t *Transform2D) Translate(trans mgl64.Vec2) *Transform2D {
	t.trans = t.trans.Add(trans)

	return t
}

// SetScale replaces the scale factor. Returns the receiver.
func (t *Transform2D) SetScale(scale float64) *Transform2D {
	t.scale = scale

	return t
}

// Scale multiplies the scale factor by scale. Returns the receiver.
func (t *Transform2D) Scale(scale float64) *Transform2D {
	t.scale *= scale

	return t
}

// SetIdentity resets rotation, translation and scale to neutral values.
// Returns the receiver for chaining.
func (t *Transform2D) SetIdentity() *Transform2D {
	*t = Identity2D()

	return t
}

// Normalize re-wraps the rotation angle into (−π, π]. Returns the receiver.
func (t *Transform2D) Normalize() *Transform2D {
	t.angle = wrapAngle(t.angle)

	return t
}

// Compose combines two planar transforms so that the result applies other
// first, then t — same order contract and closed form as
// Transform3D.Compose, with quaternion multiplication replaced by angle
// addition. Complexity: O(1).
func (t Transform2D) Compose(other Transform2D) Transform2D {
	return Transform2D{
		angle: wrapAngle(t.angle + other.angle),
		trans: mgl64.Rotate2D(t.angle).Mul2x1(other.trans).Add(t.trans.Mul(1 / other.scale)),
		scale: t.scale * other.scale,
	}
}

// Invert inverts the transform in place, so that
// t.Compose(t.Inverse()) ≈ Identity2D(). A zero scale is a caller
// precondition violation. Returns the receiver.
func (t *Transform2D) Invert() *Transform2D {
	t.angle = wrapAngle(-t.angle)
	t.trans = mgl64.Rotate2D(t.angle).Mul2x1(t.trans).Mul(-t.scale)
	t.scale = 1 / t.scale

	return t
}

// Inverse returns the inverted transform, leaving the receiver untouched.
func (t Transform2D) Inverse() Transform2D {
	t.Invert()

	return t
}

// TransformVec maps v through the full pipeline (R·v + t)·s.
func (t Transform2D) TransformVec(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Rotate2D(t.angle).Mul2x1(v).Add(t.trans).Mul(t.scale)
}

// RotateVec applies only the rotation stage.
func (t Transform2D) RotateVec(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Rotate2D(t.angle).Mul2x1(v)
}

// TranslateVec applies only the translation stage.
func (t Transform2D) TranslateVec(v mgl64.Vec2) mgl64.Vec2 {
	return v.Add(t.trans)
}

// ScaleVec applies only the scaling stage.
func (t Transform2D) ScaleVec(v mgl64.Vec2) mgl64.Vec2 {
	return v.Mul(t.scale)
}

// IsApprox reports whether the two transforms differ by less than eps in
// every part: rotation by wrapped angle distance, translation by Euclidean
// distance, scale by absolute difference.
func (t Transform2D) IsApprox(other Transform2D, eps float64) bool {
	return math.Abs(wrapAngle(t.angle-other.angle)) < eps &&
		t.trans.Sub(other.trans).Len() < eps &&
		math.Abs(t.scale-other.scale) < eps
}

// Affine returns the compact rotation+translation affine matrix (scale
// excluded, as in Transform3D.Affine).
func (t Transform2D) Affine() mgl64.Mat3 {
	c, s := math.Cos(t.angle), math.Sin(t.angle)

	// column-major
	return mgl64.Mat3{
		c, s, 0,
		-s, c, 0,
		t.trans[0], t.trans[1], 1,
	}
}

// String renders the transform for logs and debugging. Not a parsable
// persisted format.
func (t Transform2D) String() string {
	return fmt.Sprintf("Rotation:    %g rad\nTranslation: %g %g\nScale:       %g",
		t.angle, t.trans.X(), t.trans.Y(), t.scale)
}

// wrapAngle maps a into (−π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a <= -math.Pi:
		a += 2 * math.Pi
	case a > math.Pi:
		a -= 2 * math.Pi
	}

	return a
}

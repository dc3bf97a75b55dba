// Package transform provides the rigid + uniform-scale transform algebra
// used to map geometry between a cluster's local frame and the global frame.
//
// 🚀 What is a transform here?
//
//	A value combining three parts:
//	  • a rotation   — unit quaternion in 3D, planar angle in 2D
//	  • a translation — vector of matching dimension
//	  • a scale      — one non-zero uniform factor
//	applied to a vector as
//
//	  T(v) = (R·v + t)·s
//
// ✨ Key guarantees:
//   - Composition order is exact: A.Compose(B).TransformVec(v) equals
//     A.TransformVec(B.TransformVec(v)) — apply B, then A. The closed form
//     (R = R_A·R_B, s = s_A·s_B, t = R_A·t_B + t_A/s_B) is validated by
//     round-trip and identity tests, never assumed from componentwise
//     updates of rotation/translation/scale in isolation.
//   - Inversion satisfies A.Compose(A.Inverse()) ≈ Identity:
//     R' = R⁻¹, s' = 1/s, t' = −(R⁻¹·t)·s.
//   - The rotation is re-normalized by every mutating rotation operation,
//     so it stays unit-norm across arbitrarily long solver runs.
//
// Each dimension gets its own monomorphized type — Transform3D and
// Transform2D — rather than a runtime-polymorphic rotation.
//
// ⚙️ Usage:
//
//	import "github.com/veremko/gcmath/transform"
//
//	cluster := transform.New3D(q, mgl64.Vec3{1, 2, 3}, 2.0)
//	local := cluster.Inverse().TransformVec(global)
//	// ... solver iterates ...
//	global2 := cluster.TransformVec(local)
//
// Failure semantics: no operation returns an error. A zero scale makes
// inversion ill-defined (division by zero) — that is a caller precondition,
// not a reported condition.
//
// All operations are pure, synchronous and allocation-free; values may be
// copied and composed freely across goroutines as long as no mutator races
// with a reader.
package transform

// Package parallel evaluates parallelism constraints between direction
// vectors: scalar residuals and their exact partial derivatives, as
// consumed by a Newton-type iterative solver.
//
// 🚀 How it works
//
//	A parallelism relation compares two direction vectors whose sign may
//	be ambiguous (a line direction and its negation describe the same
//	line). A Direction mode breaks the tie:
//	  • Same     — residual ‖d1 − d2‖ (directions expected to agree)
//	  • Opposite — residual ‖d1 + d2‖ (expected to oppose)
//	  • Both     — sign-agnostic: pick Same when d1·d2 ≥ 0, else Opposite
//
//	The Both branch is recomputed from the same dot-product test in every
//	residual and gradient call, so residual and gradient can never
//	disagree within one solver step.
//
// A Constraint binds the mode to an ordered pair of geometry tags. Each
// tag contributes the sub-range of its parameter vector that holds its
// direction (lines and planes share a layout; a cylinder's axis lives at
// the same offset inside a longer vector). Adding a new tag pair means
// supplying sub-range resolution only — the Same/Opposite/Both math is
// shared, never duplicated.
//
// ⚙️ Usage:
//
//	c, err := parallel.New(geom.Line3D, geom.Cylinder3D, parallel.Both)
//	if err != nil { ... }            // unsupported pair: setup-time error
//	r := c.Residual(p1, p2)          // scalar constraint violation
//	g := c.GradientFirst(p1, p2, dp) // directional derivative along dp
//
// Error model (three distinct categories):
//   - Unsupported tag pairs and invalid modes are configuration errors,
//     surfaced by New — never during evaluation.
//   - Both passed to a complete-gradient operation is a programmer error
//     and panics (the capability gap is deliberate: position-insensitivity
//     under branch switching has no gradient formula here).
//   - Exactly antiparallel (Same) or equal (Opposite) directions make the
//     gradient denominator zero and produce NaN/Inf. This layer does not
//     detect or recover; the outer solver must check for non-finite
//     results after an evaluation pass.
//
// All evaluations are pure and read-only on their parameter inputs;
// complete variants write only the caller-provided output buffer.
// Independent evaluations are safe to run concurrently as long as output
// buffers do not overlap and no parameter vector is concurrently mutated.
package parallel

// Package gcmath is the numeric heart of a parametric geometric-constraint
// solver: transforms between nested coordinate frames, and analytic
// residual/gradient evaluation for geometric relations.
//
// 🚀 What is gcmath?
//
//	A small, focused library providing the two pieces a Newton-type
//	constraint solver cannot afford to get wrong:
//	  • A rigid + uniform-scale transform algebra with exact composition,
//	    inversion and vector-mapping semantics (quaternion in 3D, planar
//	    angle in 2D)
//	  • A constraint-functor framework turning geometric relations
//	    ("these directions are parallel") into scalar residuals and exact
//	    partial derivatives over flat parameter vectors
//
// ✨ Why choose gcmath?
//
//   - Exact closed forms — composition and inversion verified against the
//     round-trip property, not assumed from componentwise updates
//   - Pure computation — no I/O, no hidden state; every evaluation only
//     reads its inputs, so independent evaluations parallelize freely
//   - Built on proven numerics — mgl64 quaternions/vectors and gonum
//     slice kernels, not hand-rolled linear algebra
//
// Everything is organized under three subpackages:
//
//	transform/ — Transform3D & Transform2D: compose, invert, map vectors
//	geom/      — geometry tags, parameter-vector layouts, borrowed spans
//	parallel/  — Same/Opposite/Both direction resolution & parallelism
//	             constraint functors (residuals, gradients, complete
//	             gradients)
//
// Quick ASCII example:
//
//	    global frame
//	        │ cluster transform (R,T,S)
//	        ▼
//	    local frame ── parameter vectors ── residual/gradient ──▶ solver
//
// The outer Newton iteration, clustering and geometry storage are external
// collaborators: they call into this core every iteration and apply the
// parameter updates it justifies.
//
//	go get github.com/veremko/gcmath
package gcmath

package parallel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Direction is the tie-break policy resolving sign ambiguity when two
// direction vectors are compared for parallelism.
type Direction uint8

const (
	// Same expects the two directions to point the same way.
	Same Direction = iota

	// Opposite expects the two directions to point opposite ways.
	Opposite

	// Both is sign-agnostic: the branch matching the current relative
	// orientation (d1·d2 ≥ 0 → Same, else Opposite) is selected per call.
	Both
)

// String returns the mode name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Same:
		return "Same"
	case Opposite:
		return "Opposite"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// resolve collapses Both into the concrete branch for the current
// orientation of d1, d2. Same and Opposite pass through unchanged.
// Every residual and gradient evaluation resolves through this single
// function, which keeps the branch choice consistent within a solver step.
func resolve(dir Direction, d1, d2 []float64) Direction {
	if dir != Both {
		return dir
	}
	if floats.Dot(d1, d2) >= 0 {
		return Same
	}

	return Opposite
}

// residual computes the parallelism violation of two 3-element direction
// slices: ‖d1−d2‖ under Same, ‖d1+d2‖ under Opposite. Complexity: O(1).
func residual(d1, d2 []float64, dir Direction) float64 {
	var tmp [3]float64
	if resolve(dir, d1, d2) == Same {
		floats.SubTo(tmp[:], d1, d2)
	} else {
		floats.AddTo(tmp[:], d1, d2)
	}

	return floats.Norm(tmp[:], 2)
}

// gradientFirst is the directional derivative of residual along a
// perturbation dd1 of the first direction. A zero-norm difference/sum
// (exactly antiparallel under Same, exactly equal under Opposite) makes
// the result non-finite; callers must guard or accept NaN/Inf.
func gradientFirst(d1, d2, dd1 []float64, dir Direction) float64 {
	var tmp [3]float64
	if resolve(dir, d1, d2) == Same {
		floats.SubTo(tmp[:], d1, d2)
	} else {
		floats.AddTo(tmp[:], d1, d2)
	}

	return floats.Dot(tmp[:], dd1) / floats.Norm(tmp[:], 2)
}

// gradientSecond is the directional derivative of residual along a
// perturbation dd2 of the second direction. Under Same the sensitivity is
// negated (the second direction enters with opposite sign). Same
// degeneracy caveat as gradientFirst.
func gradientSecond(d1, d2, dd2 []float64, dir Direction) float64 {
	var tmp [3]float64
	if resolve(dir, d1, d2) == Same {
		floats.SubTo(tmp[:], d1, d2)

		return -floats.Dot(tmp[:], dd2) / floats.Norm(tmp[:], 2)
	}
	floats.AddTo(tmp[:], d1, d2)

	return floats.Dot(tmp[:], dd2) / floats.Norm(tmp[:], 2)
}

// gradientFirstComplete writes the full 3-element gradient of residual
// with respect to the first direction into dst: the unit difference
// (d1−d2)/‖d1−d2‖ under Same, the unit sum (d1+d2)/‖d1+d2‖ under
// Opposite. Both has no complete-gradient formula and panics.
func gradientFirstComplete(dst, d1, d2 []float64, dir Direction) {
	switch dir {
	case Same:
		floats.SubTo(dst, d1, d2)
	case Opposite:
		floats.AddTo(dst, d1, d2)
	default:
		panic("parallel: Both mode has no complete gradient")
	}
	floats.Scale(1/floats.Norm(dst, 2), dst)
}

// gradientSecondComplete is the second-side counterpart of
// gradientFirstComplete: (d2−d1)/‖d1−d2‖ under Same, (d2+d1)/‖d1+d2‖
// under Opposite. Both panics.
func gradientSecondComplete(dst, d1, d2 []float64, dir Direction) {
	switch dir {
	case Same:
		floats.SubTo(dst, d2, d1)
	case Opposite:
		floats.AddTo(dst, d2, d1)
	default:
		panic("parallel: Both mode has no complete gradient")
	}
	floats.Scale(1/floats.Norm(dst, 2), dst)
}

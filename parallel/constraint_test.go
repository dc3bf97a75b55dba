package parallel_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/veremko/gcmath/geom"
	"github.com/veremko/gcmath/parallel"
)

// TestNew_SupportedPairs enumerates the closed set of tag pairs a
// parallelism constraint accepts.
func TestNew_SupportedPairs(t *testing.T) {
	supported := [][2]geom.Tag{
		{geom.Line3D, geom.Line3D},
		{geom.Line3D, geom.Plane3D},
		{geom.Plane3D, geom.Line3D},
		{geom.Plane3D, geom.Plane3D},
		{geom.Cylinder3D, geom.Cylinder3D},
		{geom.Cylinder3D, geom.Line3D},
		{geom.Line3D, geom.Cylinder3D},
		{geom.Cylinder3D, geom.Plane3D},
		{geom.Plane3D, geom.Cylinder3D},
	}
	for _, p := range supported {
		_, err := parallel.New(p[0], p[1], parallel.Same)
		assert.NoErrorf(t, err, "(%s, %s) must be supported", p[0], p[1])
	}
}

// TestNew_Errors verifies setup-time failures: pairs involving a point
// have no direction to compare, and out-of-range modes are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := parallel.New(geom.Point3D, geom.Line3D, parallel.Same)
	assert.ErrorIs(t, err, parallel.ErrUnsupportedPair)

	_, err = parallel.New(geom.Line3D, geom.Point3D, parallel.Same)
	assert.ErrorIs(t, err, parallel.ErrUnsupportedPair)

	_, err = parallel.New(geom.Point3D, geom.Point3D, parallel.Opposite)
	assert.ErrorIs(t, err, parallel.ErrUnsupportedPair)

	_, err = parallel.New(geom.Line3D, geom.Line3D, parallel.Direction(9))
	assert.ErrorIs(t, err, parallel.ErrBadDirection)
}

// TestConstraint_Mode verifies the stored direction mode is reported back.
func TestConstraint_Mode(t *testing.T) {
	c := mustNew(t, geom.Line3D, geom.Line3D, parallel.Opposite)
	assert.Equal(t, parallel.Opposite, c.Mode())
	assert.Equal(t, "Opposite", c.Mode().String())
}

// TestConstraint_MixedLayouts verifies a cylinder-line pair reads each
// side's own sub-range despite the differing parameter lengths.
func TestConstraint_MixedLayouts(t *testing.T) {
	c := mustNew(t, geom.Cylinder3D, geom.Line3D, parallel.Same)

	cyl := cylinder(1, 0, 0, 2.5) // 7 params
	ln := line(4, 4, 4, 0, 1, 0)  // 6 params
	assert.InDelta(t, math.Sqrt2, c.Residual(cyl, ln), 1e-15)

	// flip the ordered pair
	flipped := mustNew(t, geom.Line3D, geom.Cylinder3D, parallel.Same)
	assert.InDelta(t, math.Sqrt2, flipped.Residual(ln, cyl), 1e-15)
}

// TestGradientComplete_Zeroing verifies every entry outside the direction
// sub-range — position and the cylinder's radius — is exactly zero, and
// the direction sub-range carries the unit difference/sum.
func TestGradientComplete_Zeroing(t *testing.T) {
	c := mustNew(t, geom.Cylinder3D, geom.Cylinder3D, parallel.Same)

	p1 := cylinder(1, 0, 0, 0.5)
	p2 := cylinder(0, 1, 0, 0.5)

	grad := []float64{9, 9, 9, 9, 9, 9, 9} // sentinel: must be overwritten
	c.GradientFirstComplete(p1, p2, grad)

	for _, i := range []int{0, 1, 2, 6} {
		assert.Zerof(t, grad[i], "non-direction entry %d must be exactly zero", i)
	}
	// (d1-d2)/‖d1-d2‖ = (1,-1,0)/√2
	assert.InDelta(t, 1/math.Sqrt2, grad[3], 1e-15)
	assert.InDelta(t, -1/math.Sqrt2, grad[4], 1e-15)
	assert.InDelta(t, 0.0, grad[5], 1e-15)

	// second side flips the sign under Same
	c.GradientSecondComplete(p1, p2, grad)
	assert.InDelta(t, -1/math.Sqrt2, grad[3], 1e-15)
	assert.InDelta(t, 1/math.Sqrt2, grad[4], 1e-15)
	assert.Zero(t, grad[6])
}

// TestGradientComplete_MatchesDirectional verifies the complete gradient
// contracted with a perturbation equals the directional gradient.
func TestGradientComplete_MatchesDirectional(t *testing.T) {
	for _, dir := range []parallel.Direction{parallel.Same, parallel.Opposite} {
		c := mustNew(t, geom.Line3D, geom.Line3D, dir)

		p1 := line(1, 2, 3, 1, 0.2, -0.3)
		p2 := line(4, 5, 6, 0.8, -0.1, 0.1)
		dp := line(0.5, 0.5, 0.5, -0.2, 0.4, 0.1)

		grad := make([]float64, len(p1))
		c.GradientFirstComplete(p1, p2, grad)
		assert.InDeltaf(t, c.GradientFirst(p1, p2, dp), floats.Dot(grad, dp), 1e-14,
			"%s: complete·dp must equal directional (first)", dir)

		c.GradientSecondComplete(p1, p2, grad)
		assert.InDeltaf(t, c.GradientSecond(p1, p2, dp), floats.Dot(grad, dp), 1e-14,
			"%s: complete·dp must equal directional (second)", dir)
	}
}

// TestGradientComplete_BothPanics pins the documented capability gap:
// Both has no complete-gradient formula and must fail fast.
func TestGradientComplete_BothPanics(t *testing.T) {
	c := mustNew(t, geom.Line3D, geom.Line3D, parallel.Both)
	p1 := line(0, 0, 0, 1, 0, 0)
	p2 := line(0, 0, 0, 0, 1, 0)
	grad := make([]float64, 6)

	assert.Panics(t, func() { c.GradientFirstComplete(p1, p2, grad) })
	assert.Panics(t, func() { c.GradientSecondComplete(p1, p2, grad) })
}

// TestConstraint_InputsUntouched verifies evaluation never mutates the
// parameter vectors it reads.
func TestConstraint_InputsUntouched(t *testing.T) {
	c := mustNew(t, geom.Line3D, geom.Line3D, parallel.Same)

	p1 := line(1, 2, 3, 1, 0, 0)
	p2 := line(4, 5, 6, 0, 1, 0)
	dp := line(0, 0, 0, 1, 1, 1)
	copy1, copy2 := append([]float64(nil), p1...), append([]float64(nil), p2...)

	_ = c.Residual(p1, p2)
	_ = c.GradientFirst(p1, p2, dp)
	_ = c.GradientSecond(p1, p2, dp)
	c.GradientFirstComplete(p1, p2, make([]float64, 6))
	c.GradientSecondComplete(p1, p2, make([]float64, 6))

	assert.Equal(t, copy1, p1)
	assert.Equal(t, copy2, p2)
}

// TestConstraint_ConcurrentEvaluation exercises the two-phase solver
// discipline: many goroutines evaluate residuals and complete gradients of
// the same constraint over shared read-only parameters, each writing its
// own output buffer.
func TestConstraint_ConcurrentEvaluation(t *testing.T) {
	c := mustNew(t, geom.Line3D, geom.Line3D, parallel.Same)

	p1 := line(1, 2, 3, 1, 0.25, -0.5)
	p2 := line(4, 5, 6, 0.75, -0.25, 0.5)
	wantRes := c.Residual(p1, p2)
	wantGrad := make([]float64, 6)
	c.GradientFirstComplete(p1, p2, wantGrad)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]float64, workers)
	grads := make([][]float64, workers)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			grads[w] = make([]float64, 6)
			for i := 0; i < 1000; i++ {
				results[w] = c.Residual(p1, p2)
				c.GradientFirstComplete(p1, p2, grads[w])
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.Equal(t, wantRes, results[w], "worker %d residual", w)
		require.Equal(t, wantGrad, grads[w], "worker %d gradient", w)
	}
}

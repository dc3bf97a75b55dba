package parallel

import (
	"errors"
	"fmt"

	"github.com/veremko/gcmath/geom"
)

// ErrUnsupportedPair is returned by New for tag pairs with no parallelism
// functor (any pair involving a point).
var ErrUnsupportedPair = errors.New("parallel: unsupported geometry tag pair")

// ErrBadDirection is returned by New for a Direction value outside
// Same/Opposite/Both.
var ErrBadDirection = errors.New("parallel: invalid direction mode")

// supportedPairs enumerates the closed set of tag pairs a parallelism
// constraint can be built for. Line and plane share one layout so every
// combination of the two reuses the same spans; the cylinder contributes
// its own span on its side of a mixed pair.
var supportedPairs = map[[2]geom.Tag]bool{
	{geom.Line3D, geom.Line3D}:         true,
	{geom.Line3D, geom.Plane3D}:        true,
	{geom.Plane3D, geom.Line3D}:        true,
	{geom.Plane3D, geom.Plane3D}:       true,
	{geom.Cylinder3D, geom.Cylinder3D}: true,
	{geom.Cylinder3D, geom.Line3D}:     true,
	{geom.Cylinder3D, geom.Plane3D}:    true,
	{geom.Line3D, geom.Cylinder3D}:     true,
	{geom.Plane3D, geom.Cylinder3D}:    true,
}

// Constraint is a stateless parallelism functor for one ordered pair of
// geometry tags. It stores only the direction mode and the two resolved
// parameter sub-ranges; all geometry data is passed per call and never
// mutated. A Constraint is safe for concurrent use.
type Constraint struct {
	dir    Direction
	first  geom.Span // direction sub-range inside the first parameter vector
	second geom.Span // direction sub-range inside the second parameter vector
}

// New resolves the direction sub-ranges for an ordered tag pair and binds
// the direction mode. Pairs outside the supported set fail here with
// ErrUnsupportedPair — constraint setup is the only place a layout
// mismatch can surface, evaluation never checks again.
func New(tag1, tag2 geom.Tag, dir Direction) (*Constraint, error) {
	if dir > Both {
		return nil, fmt.Errorf("%w: %s", ErrBadDirection, dir)
	}
	if !supportedPairs[[2]geom.Tag{tag1, tag2}] {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrUnsupportedPair, tag1, tag2)
	}

	s1, err := geom.DirectionSpan(tag1)
	if err != nil {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrUnsupportedPair, tag1, tag2)
	}
	s2, err := geom.DirectionSpan(tag2)
	if err != nil {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrUnsupportedPair, tag1, tag2)
	}

	return &Constraint{dir: dir, first: s1, second: s2}, nil
}

// Mode returns the stored direction mode.
func (c *Constraint) Mode() Direction { return c.dir }

// Residual extracts each side's direction sub-range and returns the
// parallelism violation. Zero means exactly parallel (under the stored
// mode). Complexity: O(1).
func (c *Constraint) Residual(param1, param2 []float64) float64 {
	return residual(c.first.Of(param1), c.second.Of(param2), c.dir)
}

// GradientFirst returns the directional derivative of Residual along a
// perturbation dparam1 of the first parameter vector. Only dparam1's
// direction sub-range contributes; all other entries have zero
// sensitivity.
func (c *Constraint) GradientFirst(param1, param2, dparam1 []float64) float64 {
	return gradientFirst(c.first.Of(param1), c.second.Of(param2), c.first.Of(dparam1), c.dir)
}

// GradientSecond returns the directional derivative of Residual along a
// perturbation dparam2 of the second parameter vector.
func (c *Constraint) GradientSecond(param1, param2, dparam2 []float64) float64 {
	return gradientSecond(c.first.Of(param1), c.second.Of(param2), c.second.Of(dparam2), c.dir)
}

// GradientFirstComplete fills gradient, a caller-owned buffer shaped like
// the first parameter vector, with the full gradient of Residual with
// respect to that vector. Entries outside the direction sub-range
// (position, radius) are forced to zero — a pure parallelism constraint
// has no sensitivity to them.
//
// The Both mode is not supported here and panics: resolving the branch
// inside a complete gradient is outside this functor's contract.
func (c *Constraint) GradientFirstComplete(param1, param2, gradient []float64) {
	zero(gradient)
	gradientFirstComplete(c.first.Of(gradient), c.first.Of(param1), c.second.Of(param2), c.dir)
}

// GradientSecondComplete is the second-side counterpart of
// GradientFirstComplete: gradient is shaped like the second parameter
// vector. Both panics.
func (c *Constraint) GradientSecondComplete(param1, param2, gradient []float64) {
	zero(gradient)
	gradientSecondComplete(c.second.Of(gradient), c.first.Of(param1), c.second.Of(param2), c.dir)
}

// zero clears every entry of v.
func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}

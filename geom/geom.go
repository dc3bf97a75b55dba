package geom

import "errors"

// ErrNoDirection is returned when a layout lookup asks for the direction
// sub-range of a tag that has none (Point3D).
var ErrNoDirection = errors.New("geom: tag has no direction sub-range")

// ErrUnknownTag is returned when a layout lookup receives a tag outside
// the closed set.
var ErrUnknownTag = errors.New("geom: unknown geometry tag")

// Tag identifies a geometry kind. The set is closed: constraint dispatch
// enumerates it exhaustively, it is not an extension point.
type Tag uint8

const (
	// Point3D is a position in space: 3 parameters.
	Point3D Tag = iota

	// Line3D is a point plus a direction: 6 parameters.
	Line3D

	// Plane3D is a point plus a normal; shares Line3D's layout.
	Plane3D

	// Cylinder3D is a point, an axis direction and a radius: 7 parameters.
	Cylinder3D
)

// String returns the tag name for diagnostics.
func (t Tag) String() string {
	switch t {
	case Point3D:
		return "Point3D"
	case Line3D:
		return "Line3D"
	case Plane3D:
		return "Plane3D"
	case Cylinder3D:
		return "Cylinder3D"
	default:
		return "Tag(?)"
	}
}

// Span is a borrowed view over a caller-owned parameter vector: the
// half-open range [Offset, Offset+Len). It never owns storage; the slice
// returned by Of aliases the argument and is valid only while the owner is.
type Span struct {
	Offset int
	Len    int
}

// Of reslices v to the span's range. The result shares backing storage
// with v. Out-of-range spans panic via the reslice, as a caller bug should.
func (s Span) Of(v []float64) []float64 {
	return v[s.Offset : s.Offset+s.Len]
}

// Layout describes where a tag's semantic quantities live inside its
// parameter vector.
type Layout struct {
	// Params is the total parameter-vector length for the tag.
	Params int

	// Direction is the 3-element sub-range holding the direction (line,
	// cylinder axis) or normal (plane). Zero Span if the tag has none.
	Direction Span
}

// layouts is the closed per-tag layout table. Line and plane share one
// layout; the cylinder's direction occupies the same offset but its vector
// is one entry longer (the radius).
var layouts = map[Tag]Layout{
	Point3D:    {Params: 3},
	Line3D:     {Params: 6, Direction: Span{Offset: 3, Len: 3}},
	Plane3D:    {Params: 6, Direction: Span{Offset: 3, Len: 3}},
	Cylinder3D: {Params: 7, Direction: Span{Offset: 3, Len: 3}},
}

// LayoutOf returns the parameter layout for tag, or ErrUnknownTag.
// Complexity: O(1).
func LayoutOf(tag Tag) (Layout, error) {
	l, ok := layouts[tag]
	if !ok {
		return Layout{}, ErrUnknownTag
	}

	return l, nil
}

// DirectionSpan returns the direction sub-range for tag. Tags without a
// direction (Point3D) yield ErrNoDirection; unknown tags yield
// ErrUnknownTag. Complexity: O(1).
func DirectionSpan(tag Tag) (Span, error) {
	l, err := LayoutOf(tag)
	if err != nil {
		return Span{}, err
	}
	if l.Direction.Len == 0 {
		return Span{}, ErrNoDirection
	}

	return l.Direction, nil
}

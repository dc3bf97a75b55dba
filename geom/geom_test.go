package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veremko/gcmath/geom"
)

// TestLayoutOf verifies the per-tag parameter lengths and direction
// sub-ranges of the layout contract.
func TestLayoutOf(t *testing.T) {
	cases := []struct {
		tag    geom.Tag
		params int
		dir    geom.Span
	}{
		{geom.Point3D, 3, geom.Span{}},
		{geom.Line3D, 6, geom.Span{Offset: 3, Len: 3}},
		{geom.Plane3D, 6, geom.Span{Offset: 3, Len: 3}},
		{geom.Cylinder3D, 7, geom.Span{Offset: 3, Len: 3}},
	}
	for _, tc := range cases {
		l, err := geom.LayoutOf(tc.tag)
		require.NoErrorf(t, err, "LayoutOf(%s)", tc.tag)
		assert.Equalf(t, tc.params, l.Params, "%s param length", tc.tag)
		assert.Equalf(t, tc.dir, l.Direction, "%s direction span", tc.tag)
	}

	_, err := geom.LayoutOf(geom.Tag(42))
	assert.ErrorIs(t, err, geom.ErrUnknownTag)
}

// TestDirectionSpan verifies direction lookup and its setup-time errors.
func TestDirectionSpan(t *testing.T) {
	s, err := geom.DirectionSpan(geom.Cylinder3D)
	require.NoError(t, err)
	assert.Equal(t, geom.Span{Offset: 3, Len: 3}, s)

	_, err = geom.DirectionSpan(geom.Point3D)
	assert.ErrorIs(t, err, geom.ErrNoDirection, "a point has no direction")

	_, err = geom.DirectionSpan(geom.Tag(42))
	assert.ErrorIs(t, err, geom.ErrUnknownTag)
}

// TestSpan_Of verifies a Span is a borrowed view: it aliases the owner's
// storage instead of copying it.
func TestSpan_Of(t *testing.T) {
	params := []float64{0, 1, 2, 3, 4, 5, 6}
	span := geom.Span{Offset: 3, Len: 3}

	view := span.Of(params)
	require.Equal(t, []float64{3, 4, 5}, view)

	view[0] = 99
	assert.Equal(t, 99.0, params[3], "writes through the view must reach the owner")

	params[5] = -1
	assert.Equal(t, -1.0, view[2], "owner writes must be visible through the view")
}

// TestTag_String covers the closed tag set plus the out-of-range fallback.
func TestTag_String(t *testing.T) {
	assert.Equal(t, "Point3D", geom.Point3D.String())
	assert.Equal(t, "Line3D", geom.Line3D.String())
	assert.Equal(t, "Plane3D", geom.Plane3D.String())
	assert.Equal(t, "Cylinder3D", geom.Cylinder3D.String())
	assert.Equal(t, "Tag(?)", geom.Tag(42).String())
}

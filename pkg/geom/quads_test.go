package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/rmlines/pkg/lines"
)

func assertVec(t *testing.T, expected, actual Vec) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9, "y of %v", actual)
}

func TestSegmentQuadsStraight(t *testing.T) {
	l := line(lines.Highlighter, pt(0, 0), pt(10, 0), pt(20, 0))
	q := SegmentQuads(&l, 1)

	require.Len(t, q, 2)
	for _, quad := range q {
		assert.Len(t, quad.Coords(), 8)
	}

	assertVec(t, Vec{0, 1}, q[0][0])
	assertVec(t, Vec{10, 1}, q[0][1])
	assertVec(t, Vec{0, -1}, q[0][2])
	assertVec(t, Vec{10, -1}, q[0][3])

	assertVec(t, Vec{10, 1}, q[1][0])
	assertVec(t, Vec{20, -1}, q[1][3])
}

func TestSegmentQuadsCorner(t *testing.T) {
	l := line(lines.Highlighter, pt(0, 0), pt(10, 0), pt(10, 10))
	q := SegmentQuads(&l, 1)
	require.Len(t, q, 2)

	// the joint lies on the bisector, shared by both quads
	assertVec(t, Vec{9, 1}, q[0][1])
	assertVec(t, Vec{11, -1}, q[0][3])
	assert.Equal(t, q[0][1], q[1][0])
	assert.Equal(t, q[0][3], q[1][2])

	// long edges stay parallel to the segments
	assert.InDelta(t, q[0][0].Y, q[0][1].Y, 1e-9)
	assert.InDelta(t, q[1][0].X, q[1][1].X, 1e-9)

	// the open end is perpendicular
	assertVec(t, Vec{9, 10}, q[1][1])
	assertVec(t, Vec{11, 10}, q[1][3])
}

func TestSegmentQuadsDegenerate(t *testing.T) {
	l := line(lines.Highlighter, pt(5, 5))
	assert.Empty(t, SegmentQuads(&l, 1))

	l = line(lines.Highlighter, pt(5, 5), pt(5, 5))
	q := SegmentQuads(&l, 2)
	require.Len(t, q, 1)
	for _, c := range q[0].Coords() {
		assert.False(t, math.IsNaN(c))
	}
	assertVec(t, Vec{5, 7}, q[0][0])

	// reversal has no bisector
	l = line(lines.Highlighter, pt(0, 0), pt(10, 0), pt(0, 0))
	q = SegmentQuads(&l, 1)
	require.Len(t, q, 2)
	for _, quad := range q {
		for _, c := range quad.Coords() {
			assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
		}
	}
}

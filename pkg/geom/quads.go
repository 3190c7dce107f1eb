package geom

import (
	"math"

	"github.com/akeil/rmlines/pkg/lines"
)

// miterLimit caps the joint offset (relative to the half width)
// for sharp turns.
const miterLimit = 4.0

// Vec is a 2D point or direction.
type Vec struct {
	X, Y float64
}

func (v Vec) add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

func (v Vec) dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec) length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Quad is a four cornered polygon covering one segment of a line.
//
// The corners are ordered like PDF QuadPoints: both corners on one side of
// the segment (start, end), then both corners on the other side.
type Quad [4]Vec

// Coords returns the eight coordinates of the quad.
func (q Quad) Coords() []float64 {
	c := make([]float64, 0, 8)
	for _, v := range q {
		c = append(c, v.X, v.Y)
	}
	return c
}

// SegmentQuads decomposes a line into one quad per segment.
//
// The long edges of each quad run parallel to the segment at halfWidth
// distance. Where two segments meet, the short edge lies on the bisector of
// the angle between them, so neighbouring quads share their corners.
// The outer ends of the first and last segment are perpendicular.
func SegmentQuads(l *lines.Line, halfWidth float64) []Quad {
	n := len(l.Points) - 1
	if n < 1 {
		return nil
	}

	pts := make([]Vec, len(l.Points))
	for i, p := range l.Points {
		pts[i] = Vec{float64(p.X), float64(p.Y)}
	}

	normals := segmentNormals(pts)

	// one offset per point, shared by the segments that meet there
	joints := make([]Vec, len(pts))
	joints[0] = normals[0].scale(halfWidth)
	joints[n] = normals[n-1].scale(halfWidth)
	for i := 1; i < n; i++ {
		joints[i] = bisect(normals[i-1], normals[i], halfWidth)
	}

	quads := make([]Quad, n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[i+1]
		quads[i] = Quad{
			a.add(joints[i]),
			b.add(joints[i+1]),
			a.sub(joints[i]),
			b.sub(joints[i+1]),
		}
	}

	return quads
}

// segmentNormals returns the unit normal for each segment.
// Zero-length segments take the direction of a neighbour.
func segmentNormals(pts []Vec) []Vec {
	n := len(pts) - 1
	dirs := make([]Vec, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		d := pts[i+1].sub(pts[i])
		if l := d.length(); l > 0 {
			dirs[i] = d.scale(1 / l)
			valid[i] = true
		}
	}

	fallback := Vec{1, 0}
	for i := 0; i < n; i++ {
		if valid[i] {
			fallback = dirs[i]
			break
		}
	}
	for i := 0; i < n; i++ {
		if valid[i] {
			fallback = dirs[i]
		} else {
			dirs[i] = fallback
		}
	}

	normals := make([]Vec, n)
	for i, d := range dirs {
		normals[i] = Vec{-d.Y, d.X}
	}
	return normals
}

// bisect returns the offset at a joint between two segments with the unit
// normals a and b.
func bisect(a, b Vec, halfWidth float64) Vec {
	m := a.add(b)
	l := m.length()
	if l < 1e-9 {
		// the line reverses, no bisector
		return b.scale(halfWidth)
	}
	m = m.scale(1 / l)

	f := halfWidth / m.dot(b)
	if f > halfWidth*miterLimit {
		f = halfWidth * miterLimit
	}
	return m.scale(f)
}

package imaging

import (
	"math"
)

// Matrix is a 3x3 affine transform in row-major order.
type Matrix []float64

// Identity is the transform that does nothing.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix (CCW)
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation(angle float64) Matrix {
	m := Identity()
	m[0] = math.Cos(angle)
	m[1] = math.Sin(angle) * -1

	m[3] = math.Sin(angle)
	m[4] = math.Cos(angle)

	return m
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Scaling Matrix:
//
//  sx 0  0
//  0  sy 0
//  0  0  1
//
func Scaling(sx, sy float64) Matrix {
	m := Identity()

	m[0] = sx
	m[4] = sy

	return m
}

// Fit returns a transform that moves the rectangle (x, y, w, h) to the origin
// and scales it uniformly to fit into width and height.
// The scale factor is returned along with the transform.
func Fit(x, y, w, h, width, height float64) (Matrix, float64) {
	s := 1.0
	if w > 0 && h > 0 {
		s = math.Min(width/w, height/h)
	}
	return Multiply(Scaling(s, s), Translation(-x, -y)), s
}

// Multiply combines two affine transforms.
// The result applies b first, then a.
func Multiply(a, b Matrix) Matrix {
	m := make(Matrix, 9)

	m[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	m[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	m[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	m[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	m[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	m[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	m[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	m[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	m[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]

	return m
}

// Apply applies the transform to the given x,y point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

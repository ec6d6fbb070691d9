package rowan

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// composeTransform builds a local affine matrix from decomposed transform
// properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-pivotX, -pivotY) -> Scale -> Rotate -> Translate(x, y)
func composeTransform(x, y, scaleX, scaleY, rotation, pivotX, pivotY float64) [6]float64 {
	sin, cos := math.Sincos(rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, d=sy, tx=-px*sx, ty=-py*sy
	a := scaleX
	d := scaleY
	preTx := -pivotX * scaleX
	preTy := -pivotY * scaleY

	// After Rotate:
	ra := cos * a
	rb := sin * a
	rc := -sin * d
	rd := cos * d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(x, y):
	return [6]float64{ra, rb, rc, rd, rtx + x, rty + y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// translationTransform returns a pure-translation affine matrix.
func translationTransform(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

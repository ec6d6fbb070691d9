package rowan

import (
	"math"
	"testing"
)

func affineNear(t *testing.T, got, want [6]float64, what string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("%s = %v, want %v", what, got, want)
		}
	}
}

func TestComposeTransformTranslation(t *testing.T) {
	m := composeTransform(10, 20, 1, 1, 0, 0, 0)
	affineNear(t, m, [6]float64{1, 0, 0, 1, 10, 20}, "translation")
}

func TestComposeTransformScale(t *testing.T) {
	m := composeTransform(0, 0, 2, 3, 0, 0, 0)
	affineNear(t, m, [6]float64{2, 0, 0, 3, 0, 0}, "scale")
}

func TestComposeTransformRotation(t *testing.T) {
	m := composeTransform(0, 0, 1, 1, math.Pi/2, 0, 0)
	// 90 degrees clockwise (screen coordinates): (1,0) -> (0,1)
	x, y := transformPoint(m, 1, 0)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("rotated point = (%v, %v), want (0, 1)", x, y)
	}
}

func TestComposeTransformPivot(t *testing.T) {
	// Scaling around a pivot keeps the pivot fixed at the node position.
	m := composeTransform(100, 100, 2, 2, 0, 16, 16)
	x, y := transformPoint(m, 16, 16)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("pivot maps to (%v, %v), want (100, 100)", x, y)
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := composeTransform(5, -3, 2, 0.5, 0.7, 1, 2)
	affineNear(t, multiplyAffine(identityTransform, m), m, "identity*m")
	affineNear(t, multiplyAffine(m, identityTransform), m, "m*identity")
}

func TestInvertAffineRoundTrip(t *testing.T) {
	m := composeTransform(12, 34, 1.5, 0.75, 0.3, 4, 6)
	inv := invertAffine(m)
	affineNear(t, multiplyAffine(m, inv), identityTransform, "m*inv(m)")

	x, y := transformPoint(m, 7, 11)
	bx, by := transformPoint(inv, x, y)
	if math.Abs(bx-7) > 1e-9 || math.Abs(by-11) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (7, 11)", bx, by)
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	singular := [6]float64{0, 0, 0, 0, 5, 5}
	affineNear(t, invertAffine(singular), identityTransform, "inv(singular)")
}

package gfx

import (
	"math"
	"testing"
)

func approx(a, b Scalar) bool { return math.Abs(float64(a-b)) < 1e-3 }

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := a.Mul(b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := b.Mul(a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestTranslateThenScaleOrder(t *testing.T) {
	m := Mat4Identity().Translate(V3(3, 2.5, 0)).Scale(V3(2, 4, 1))
	p := m.TransformPoint(V3(0.5, 0.5, 0))
	if !approx(p.X, 4) || !approx(p.Y, 4.5) {
		t.Fatalf("scale must apply before translate, got %+v", p)
	}
}

func TestRotateYSquashesX(t *testing.T) {
	m := Mat4Identity().RotateY(math.Pi)
	p := m.TransformPoint(V3(0.5, 0.5, 0))
	if !approx(p.X, -0.5) || !approx(p.Y, 0.5) {
		t.Fatalf("half turn about Y: got %+v", p)
	}
}

func TestOrthoMapsWorldCorners(t *testing.T) {
	m := Mat4Ortho(WorldLeft, WorldRight, WorldBottom, WorldTop, WorldNear, WorldFar)
	lo := m.TransformPoint(V3(WorldLeft, WorldBottom, 0))
	hi := m.TransformPoint(V3(WorldRight, WorldTop, 0))
	if !approx(lo.X, -1) || !approx(lo.Y, -1) || !approx(hi.X, 1) || !approx(hi.Y, 1) {
		t.Fatalf("corners: %+v %+v", lo, hi)
	}
}

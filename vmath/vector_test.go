package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVectorArithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(2); got != V2(6, 8) {
		t.Errorf("Scale = %v, want {6 8}", got)
	}
	if got := a.Div(2); got != V2(1.5, 2) {
		t.Errorf("Div = %v, want {1.5 2}", got)
	}
	if got := a.Magnitude(); math.Abs(got-5) > eps {
		t.Errorf("Magnitude = %f, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"axis", V2(10, 0), V2(1, 0)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"negative", V2(0, -7), V2(0, -1)},
		{"zero", V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !got.IsFinite() {
				t.Fatalf("Normalize(%v) produced non-finite %v", tt.in, got)
			}
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDivByZeroIsZero(t *testing.T) {
	if got := V2(1, 1).Div(0); got != (Vector2{}) {
		t.Errorf("Div(0) = %v, want zero vector", got)
	}
}

func TestAngleAndFromAngle(t *testing.T) {
	for _, a := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3, 3} {
		v := FromAngle(a)
		if math.Abs(v.Magnitude()-1) > eps {
			t.Errorf("FromAngle(%f) not unit: %v", a, v)
		}
		if math.Abs(v.Angle()-a) > eps {
			t.Errorf("FromAngle(%f).Angle() = %f", a, v.Angle())
		}
	}
}

func TestRotate(t *testing.T) {
	got := V2(1, 0).Rotate(math.Pi / 2)
	if !got.ApproxEqual(V2(0, 1), eps) {
		t.Errorf("Rotate(pi/2) = %v, want {0 1}", got)
	}
}

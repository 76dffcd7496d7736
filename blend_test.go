package ui

import "testing"

func TestColor_BlendEndpoints(t *testing.T) {
	a := NewColor(0.2, 0.4, 0.6, 0.8)
	b := NewColor(0.9, 0.1, 0.3, 0.5)

	if got := a.Blend(b, 0); !colorApprox(got, a) {
		t.Errorf("Blend(b, 0) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 1); !colorApprox(got, b) {
		t.Errorf("Blend(b, 1) = %v, want %v", got, b)
	}
}

func TestColor_BlendMidpoint(t *testing.T) {
	got := Black.Blend(White, 0.5)
	want := NewColor(0.5, 0.5, 0.5, 1)
	if !colorApprox(got, want) {
		t.Errorf("Black.Blend(White, 0.5) = %v, want %v", got, want)
	}
}

func TestColor_BlendAlpha(t *testing.T) {
	a := White.WithAlpha(0)
	b := White // alpha 1
	if got := a.Blend(b, 0.25); !approx32(got.A, 0.25) {
		t.Errorf("alpha at t=0.25 = %v, want 0.25", got.A)
	}
}

func TestColor_BlendClampsT(t *testing.T) {
	a, b := Black, White
	if got := a.Blend(b, -1); !colorApprox(got, a) {
		t.Errorf("Blend(b, -1) = %v, want %v (t clamped to 0)", got, a)
	}
	if got := a.Blend(b, 2); !colorApprox(got, b) {
		t.Errorf("Blend(b, 2) = %v, want %v (t clamped to 1)", got, b)
	}
}

func TestColor_ColorfulRoundTrip(t *testing.T) {
	c := NewColor(0.25, 0.5, 0.75, 1)
	if got := FromColorful(c.Colorful()); !colorApprox(got, c) {
		t.Errorf("FromColorful(Colorful()) = %v, want %v", got, c)
	}
}

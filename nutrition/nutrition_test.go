package nutrition

import (
	"errors"
	"math"
	"testing"
)

// assertInvalid fails the test unless err wraps ErrInvalidArgument and names
// the expected argument.
func assertInvalid(t *testing.T, err error, wantArg string) {
	t.Helper()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if ae.Arg != wantArg {
		t.Errorf("rejected arg = %q, want %q", ae.Arg, wantArg)
	}
}

/* ─── BMI ────────────────────────────────────────────────────────────── */

func TestCalculateBMI_Reference(t *testing.T) {
	got, err := CalculateBMI(70, 1.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 22.86 {
		t.Errorf("CalculateBMI(70, 1.75) = %v, want 22.86", got)
	}
}

// TestCalculateBMI_ExtremesPositive checks the result stays positive at both
// ends of the plausible range.
func TestCalculateBMI_ExtremesPositive(t *testing.T) {
	for _, in := range [][2]float64{{40, 1.4}, {200, 2.2}, {0.5, 3}} {
		got, err := CalculateBMI(in[0], in[1])
		if err != nil {
			t.Fatalf("CalculateBMI(%v, %v): unexpected error %v", in[0], in[1], err)
		}
		if got <= 0 {
			t.Errorf("CalculateBMI(%v, %v) = %v, want > 0", in[0], in[1], got)
		}
	}
}

func TestCalculateBMI_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		weight  float64
		height  float64
		wantArg string
	}{
		{"negative weight", -10, 1.75, "weight_kg"},
		{"zero weight", 0, 1.75, "weight_kg"},
		{"zero height", 70, 0, "height_m"},
		{"negative height", 70, -1.75, "height_m"},
		{"NaN weight", math.NaN(), 1.75, "weight_kg"},
		{"Inf height", 70, math.Inf(1), "height_m"},
		// height² underflows to zero, quotient would be +Inf
		{"vanishing height", 70, 1e-200, "height_m"},
		// weight is validated first
		{"both invalid", -1, 0, "weight_kg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMI(tc.weight, tc.height)
			assertInvalid(t, err, tc.wantArg)
			if got != 0 {
				t.Errorf("expected zero result on error, got %v", got)
			}
		})
	}
}

// TestBMICategory_Boundaries verifies thresholds are left-closed: a value on
// the boundary lands in the higher category.
func TestBMICategory_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{-5, CategoryUnderweight},
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{22.86, CategoryNormal},
		{24.99, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.99, CategoryOverweight},
		{30.0, CategoryObese},
		{55, CategoryObese},
	}
	for _, tc := range cases {
		got, err := BMICategory(tc.bmi)
		if err != nil {
			t.Fatalf("BMICategory(%v): unexpected error %v", tc.bmi, err)
		}
		if got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestBMICategory_NonNumeric(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := BMICategory(v)
		assertInvalid(t, err, "bmi")
	}
}

// TestBMICategory_ChainedFromBMI feeds CalculateBMI output straight into
// BMICategory, the way callers typically compose them.
func TestBMICategory_ChainedFromBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 1.75)
	if err != nil {
		t.Fatal(err)
	}
	got, err := BMICategory(bmi)
	if err != nil {
		t.Fatal(err)
	}
	if got != CategoryNormal {
		t.Errorf("category = %q, want %q", got, CategoryNormal)
	}
}

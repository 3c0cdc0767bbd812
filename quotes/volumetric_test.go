package quotes

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVolumetricWeight(t *testing.T) {
	tests := []struct {
		name    string
		parcel  Parcel
		divisor float64
		want    *float64
	}{
		{
			name:    "all dimensions present",
			parcel:  Parcel{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1},
			divisor: 5000,
			want:    f(1.2),
		},
		{
			name:    "international divisor",
			parcel:  Parcel{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1},
			divisor: 6000,
			want:    f(1.0),
		},
		{
			name:    "no dimensions",
			parcel:  Parcel{WeightKg: 2},
			divisor: 5000,
			want:    nil,
		},
		{
			name:    "missing one dimension",
			parcel:  Parcel{LengthCm: 30, WidthCm: 20, WeightKg: 2},
			divisor: 5000,
			want:    nil,
		},
		{
			name:    "zero divisor",
			parcel:  Parcel{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1},
			divisor: 0,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VolumetricWeight(tt.parcel, tt.divisor)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && !almostEqual(*got, *tt.want) {
				t.Fatalf("got %v, want %v", *got, *tt.want)
			}
		})
	}
}

func f(v float64) *float64 { return &v }

func TestChargeableWeight(t *testing.T) {
	// Volumetric wins when heavier.
	if got := ChargeableWeight(1.0, f(1.2)); !almostEqual(got, 1.2) {
		t.Fatalf("got %v, want 1.2", got)
	}
	// Actual wins when heavier.
	if got := ChargeableWeight(5.0, f(1.2)); !almostEqual(got, 5.0) {
		t.Fatalf("got %v, want 5.0", got)
	}
	// No dimensions: actual weight exactly.
	if got := ChargeableWeight(2.5, nil); !almostEqual(got, 2.5) {
		t.Fatalf("got %v, want 2.5", got)
	}
	// Non-positive volumetric never raises the billed weight.
	if got := ChargeableWeight(2.5, f(0)); !almostEqual(got, 2.5) {
		t.Fatalf("got %v, want 2.5", got)
	}
}

func TestParcelChargeableWeight(t *testing.T) {
	// 1.0 kg actual, 30x20x10 cm at divisor 5000 bills 1.2 kg.
	p := Parcel{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1, Quantity: 1}
	if got := ParcelChargeableWeight(p, 5000); !almostEqual(got, 1.2) {
		t.Fatalf("got %v, want 1.2", got)
	}

	p.Quantity = 3
	if got := ParcelChargeableWeight(p, 5000); !almostEqual(got, 3.6) {
		t.Fatalf("got %v, want 3.6", got)
	}

	// Quantity zero is treated as one.
	p.Quantity = 0
	if got := ParcelChargeableWeight(p, 5000); !almostEqual(got, 1.2) {
		t.Fatalf("got %v, want 1.2", got)
	}
}

func TestTotalChargeableWeight(t *testing.T) {
	parcels := []Parcel{
		{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1, Quantity: 1}, // 1.2 volumetric
		{WeightKg: 4, Quantity: 2},                                          // actual only
	}
	if got := TotalChargeableWeight(parcels, 5000); !almostEqual(got, 9.2) {
		t.Fatalf("got %v, want 9.2", got)
	}
}

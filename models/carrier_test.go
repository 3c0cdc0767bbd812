package models

import "testing"

func TestCarrierVolumetricDivisor(t *testing.T) {
	carrier := Carrier{
		Name:                 "Blue Dart",
		Code:                 "blue-dart",
		DivisorDomestic:      4750,
		DivisorInternational: 5000,
	}

	if got := carrier.VolumetricDivisor(false); got != 4750 {
		t.Fatalf("domestic divisor %v, want 4750", got)
	}
	if got := carrier.VolumetricDivisor(true); got != 5000 {
		t.Fatalf("international divisor %v, want 5000", got)
	}

	// Unconfigured carriers report 0 so callers can apply the platform
	// default.
	var blank Carrier
	if got := blank.VolumetricDivisor(false); got != 0 {
		t.Fatalf("blank domestic divisor %v, want 0", got)
	}
	if got := blank.VolumetricDivisor(true); got != 0 {
		t.Fatalf("blank international divisor %v, want 0", got)
	}
}

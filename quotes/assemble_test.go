package quotes

import "testing"

func TestAssembleDocumentDefaults(t *testing.T) {
	// No user-entered weight: standard envelope defaults apply.
	req, err := AssembleRateRequest(ShipmentDocument, nil, "IN", "IN", 0, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if len(req.Parcels) != 1 {
		t.Fatalf("want 1 parcel, got %d", len(req.Parcels))
	}
	p := req.Parcels[0]
	if !almostEqual(p.WeightKg, 0.5) {
		t.Fatalf("weight %v, want 0.5", p.WeightKg)
	}
	if !almostEqual(p.LengthCm, 21) || !almostEqual(p.WidthCm, 29.7) || !almostEqual(p.HeightCm, 1) {
		t.Fatalf("dimensions %v x %v x %v, want 21 x 29.7 x 1", p.LengthCm, p.WidthCm, p.HeightCm)
	}
	if req.International {
		t.Fatal("same-country lane marked international")
	}
}

func TestAssembleDocumentKeepsExplicitWeight(t *testing.T) {
	parcels := []Parcel{{WeightKg: 0.3, Quantity: 1}}
	req, err := AssembleRateRequest(ShipmentDocument, parcels, "IN", "US", 0, 6000)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(req.Parcels[0].WeightKg, 0.3) {
		t.Fatalf("explicit weight overridden: %v", req.Parcels[0].WeightKg)
	}
	if !req.International {
		t.Fatal("IN -> US must be international")
	}
}

func TestAssembleParcelRequiresWeight(t *testing.T) {
	if _, err := AssembleRateRequest(ShipmentParcel, nil, "IN", "IN", 0, 5000); err == nil {
		t.Fatal("expected error for parcel shipment without parcels")
	}

	parcels := []Parcel{{LengthCm: 10, WidthCm: 10, HeightCm: 10}}
	if _, err := AssembleRateRequest(ShipmentParcel, parcels, "IN", "IN", 0, 5000); err == nil {
		t.Fatal("expected error for parcel without weight")
	}
}

func TestAssemblePartialDimensionsRejected(t *testing.T) {
	parcels := []Parcel{{LengthCm: 30, WidthCm: 20, WeightKg: 1}}
	if _, err := AssembleRateRequest(ShipmentParcel, parcels, "IN", "IN", 0, 5000); err == nil {
		t.Fatal("expected error for partial dimensions")
	}
}

func TestAssembleComputesChargeableWeight(t *testing.T) {
	parcels := []Parcel{{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightKg: 1, Quantity: 1}}
	req, err := AssembleRateRequest(ShipmentParcel, parcels, "IN", "IN", 1000, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(req.ChargeableKg, 1.2) {
		t.Fatalf("chargeable %v, want 1.2", req.ChargeableKg)
	}
}

func TestAssembleNoDimensionsUsesActualWeight(t *testing.T) {
	parcels := []Parcel{{WeightKg: 2.5, Quantity: 1}}
	req, err := AssembleRateRequest(ShipmentParcel, parcels, "IN", "IN", 0, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(req.ChargeableKg, 2.5) {
		t.Fatalf("chargeable %v, want 2.5 exactly", req.ChargeableKg)
	}
}

func TestAssembleDefaultsQuantity(t *testing.T) {
	parcels := []Parcel{{WeightKg: 1}}
	req, err := AssembleRateRequest(ShipmentParcel, parcels, "IN", "IN", 0, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if req.Parcels[0].Quantity != 1 {
		t.Fatalf("quantity %d, want 1", req.Parcels[0].Quantity)
	}
}

func TestAssembleDoesNotModifyInput(t *testing.T) {
	parcels := []Parcel{{WeightKg: 0, Quantity: 0}}
	if _, err := AssembleRateRequest(ShipmentDocument, parcels, "IN", "IN", 0, 5000); err != nil {
		t.Fatal(err)
	}
	if parcels[0].WeightKg != 0 || parcels[0].Quantity != 0 {
		t.Fatalf("caller's parcel mutated: %+v", parcels[0])
	}
}

func TestAssembleUnknownShipmentType(t *testing.T) {
	if _, err := AssembleRateRequest("freight", nil, "IN", "IN", 0, 5000); err == nil {
		t.Fatal("expected error for unknown shipment type")
	}
}

package quotes

import "fmt"

// Standard envelope defaults applied to document shipments when the user
// supplies no weight or dimensions (A4 envelope, half a kilo).
const (
	DocumentDefaultWeightKg = 0.5
	DocumentDefaultLengthCm = 21
	DocumentDefaultWidthCm  = 29.7
	DocumentDefaultHeightCm = 1
)

// RateRequest is the payload sent to the carrier pricing service.
type RateRequest struct {
	ShipmentType  ShipmentType `json:"shipment_type"`
	OriginCountry string       `json:"origin_country"`
	DestCountry   string       `json:"dest_country"`
	OriginPincode string       `json:"origin_pincode,omitempty"`
	DestPincode   string       `json:"dest_pincode,omitempty"`
	Parcels       []Parcel     `json:"parcels"`
	DeclaredValue float64      `json:"declared_value,omitempty"`
	ChargeableKg  float64      `json:"chargeable_weight_kg"`
	International bool         `json:"international"`
}

// AssembleRateRequest turns user-entered shipment parameters into the pricing
// payload, applying shipment-type defaults: documents fall back to the
// standard envelope when no weight is given, parcels must carry an explicit
// weight on every line. Chargeable weight is precomputed with the supplied
// volumetric divisor so every carrier prices the same billed weight.
func AssembleRateRequest(
	shipmentType ShipmentType,
	parcels []Parcel,
	originCountry, destCountry string,
	declaredValue float64,
	divisor float64,
) (RateRequest, error) {

	// Defaults are filled into a copy; the caller's slice stays untouched.
	parcels = append([]Parcel(nil), parcels...)

	switch shipmentType {
	case ShipmentDocument:
		if len(parcels) == 0 {
			parcels = []Parcel{{Quantity: 1}}
		}
		for i := range parcels {
			if parcels[i].WeightKg <= 0 {
				parcels[i].WeightKg = DocumentDefaultWeightKg
				parcels[i].LengthCm = DocumentDefaultLengthCm
				parcels[i].WidthCm = DocumentDefaultWidthCm
				parcels[i].HeightCm = DocumentDefaultHeightCm
			}
		}
	case ShipmentParcel:
		if len(parcels) == 0 {
			return RateRequest{}, fmt.Errorf("parcel shipment needs at least one parcel")
		}
		for i, p := range parcels {
			if p.WeightKg <= 0 {
				return RateRequest{}, fmt.Errorf("parcel %d: weight is required", i+1)
			}
		}
	default:
		return RateRequest{}, fmt.Errorf("unknown shipment type %q", shipmentType)
	}

	for i, p := range parcels {
		if err := validateDimensions(p); err != nil {
			return RateRequest{}, fmt.Errorf("parcel %d: %w", i+1, err)
		}
		if parcels[i].Quantity < 1 {
			parcels[i].Quantity = 1
		}
	}

	international := originCountry != "" && destCountry != "" && originCountry != destCountry

	return RateRequest{
		ShipmentType:  shipmentType,
		OriginCountry: originCountry,
		DestCountry:   destCountry,
		Parcels:       parcels,
		DeclaredValue: declaredValue,
		ChargeableKg:  TotalChargeableWeight(parcels, divisor),
		International: international,
	}, nil
}

// Dimensions are optional, but partial dimensions cannot produce a volume.
func validateDimensions(p Parcel) error {
	n := 0
	for _, d := range []float64{p.LengthCm, p.WidthCm, p.HeightCm} {
		if d > 0 {
			n++
		}
	}
	if n != 0 && n != 3 {
		return fmt.Errorf("either all three dimensions or none")
	}
	return nil
}

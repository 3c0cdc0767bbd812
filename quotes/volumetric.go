package quotes

// VolumetricWeight computes the dimensional weight of a parcel in kg.
// It returns nil unless all three dimensions are present and positive:
// a parcel without dimensions is billed on actual weight alone, which is
// an allowed path, not an error.
func VolumetricWeight(p Parcel, divisor float64) *float64 {
	if divisor <= 0 {
		return nil
	}
	if p.LengthCm <= 0 || p.WidthCm <= 0 || p.HeightCm <= 0 {
		return nil
	}
	v := p.LengthCm * p.WidthCm * p.HeightCm / divisor
	return &v
}

// ChargeableWeight is the weight the carrier bills on: the greater of
// actual and volumetric weight.
func ChargeableWeight(actualKg float64, volumetricKg *float64) float64 {
	if volumetricKg != nil && *volumetricKg > actualKg {
		return *volumetricKg
	}
	return actualKg
}

// ParcelChargeableWeight applies the volumetric rule to a single parcel line,
// multiplied out by its quantity.
func ParcelChargeableWeight(p Parcel, divisor float64) float64 {
	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}
	unit := ChargeableWeight(p.WeightKg, VolumetricWeight(p, divisor))
	return unit * float64(qty)
}

// TotalChargeableWeight sums the chargeable weight of every parcel line.
func TotalChargeableWeight(parcels []Parcel, divisor float64) float64 {
	var total float64
	for _, p := range parcels {
		total += ParcelChargeableWeight(p, divisor)
	}
	return total
}

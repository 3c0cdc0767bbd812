package quotes

type ServiceLevel string

const (
	ServiceStandard  ServiceLevel = "standard"
	ServiceExpress   ServiceLevel = "express"
	ServiceEconomy   ServiceLevel = "economy"
	ServiceOvernight ServiceLevel = "overnight"
)

func IsValidServiceLevel(s string) bool {
	switch ServiceLevel(s) {
	case ServiceStandard, ServiceExpress, ServiceEconomy, ServiceOvernight:
		return true
	}
	return false
}

type ShipmentType string

const (
	ShipmentDocument ShipmentType = "document"
	ShipmentParcel   ShipmentType = "parcel"
)

type Badge string

const (
	BadgeBestPrice     Badge = "Best Price"
	BadgeAIRecommended Badge = "AI Recommended"
)

// Parcel is one package line of a shipment. Dimensions are optional as a
// group: either all three are supplied or none of them count.
type Parcel struct {
	LengthCm float64 `json:"lengthCm,omitempty"`
	WidthCm  float64 `json:"widthCm,omitempty"`
	HeightCm float64 `json:"heightCm,omitempty"`
	WeightKg float64 `json:"weightKg"`
	Quantity int     `json:"quantity"`
}

// CarrierQuote is one carrier's offer for a shipment. Cost components are
// summed upstream by the pricing service; TotalCost is never recomputed here.
// Amounts are INR.
type CarrierQuote struct {
	CarrierName           string       `json:"carrierName"`
	ServiceLevel          ServiceLevel `json:"serviceLevel"`
	TotalCost             float64      `json:"totalCost"`
	BaseRate              float64      `json:"baseRate"`
	FuelSurcharge         float64      `json:"fuelSurcharge"`
	InsuranceCost         float64      `json:"insuranceCost"`
	AdditionalFees        float64      `json:"additionalFees"`
	ActualWeightKg        float64      `json:"actualWeightKg"`
	VolumetricWeightKg    *float64     `json:"volumetricWeightKg,omitempty"`
	ChargeableWeightKg    float64      `json:"chargeableWeightKg"`
	EstimatedDeliveryDays int          `json:"estimatedDeliveryDays"`
	Badge                 Badge        `json:"badge,omitempty"`
}

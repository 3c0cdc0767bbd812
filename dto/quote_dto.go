package dto

type ParcelDTO struct {
	LengthCm float64 `json:"lengthCm" binding:"omitempty,gt=0"`
	WidthCm  float64 `json:"widthCm" binding:"omitempty,gt=0"`
	HeightCm float64 `json:"heightCm" binding:"omitempty,gt=0"`
	WeightKg float64 `json:"weightKg" binding:"omitempty,gte=0"`
	Quantity int     `json:"quantity" binding:"omitempty,min=1"`
}

type GetQuotesDTO struct {
	ShipmentType  string      `json:"shipmentType" binding:"required,oneof=document parcel"`
	OriginCountry string      `json:"originCountry" binding:"required"`
	DestCountry   string      `json:"destCountry" binding:"required"`
	Parcels       []ParcelDTO `json:"parcels" binding:"omitempty,dive"`
	DeclaredValue float64     `json:"declaredValue" binding:"omitempty,gte=0"`

	// Presentation controls, both optional.
	SortBy       string `json:"sortBy" binding:"omitempty,oneof=cost recommended"`
	ServiceLevel string `json:"serviceLevel" binding:"omitempty,oneof=all standard express economy overnight"`
}

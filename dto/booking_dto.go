package dto

type AddressDTO struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1" binding:"required"`
	Line2    string `json:"line2"`
	City     string `json:"city" binding:"required"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country" binding:"required"`
}

type QuoteSelectionDTO struct {
	CarrierName           string  `json:"carrierName" binding:"required"`
	ServiceLevel          string  `json:"serviceLevel" binding:"required,oneof=standard express economy overnight"`
	TotalCost             float64 `json:"totalCost" binding:"required,gt=0"`
	BaseRate              float64 `json:"baseRate" binding:"omitempty,gte=0"`
	FuelSurcharge         float64 `json:"fuelSurcharge" binding:"omitempty,gte=0"`
	InsuranceCost         float64 `json:"insuranceCost" binding:"omitempty,gte=0"`
	AdditionalFees        float64 `json:"additionalFees" binding:"omitempty,gte=0"`
	EstimatedDeliveryDays int     `json:"estimatedDeliveryDays" binding:"required,gt=0"`
}

type CreateBookingDTO struct {
	ShipmentType  string            `json:"shipmentType" binding:"required,oneof=document parcel"`
	Parcels       []ParcelDTO       `json:"parcels" binding:"omitempty,dive"`
	DeclaredValue float64           `json:"declaredValue" binding:"omitempty,gte=0"`
	Sender        AddressDTO        `json:"sender" binding:"required"`
	Receiver      AddressDTO        `json:"receiver" binding:"required"`
	Quote         QuoteSelectionDTO `json:"quote" binding:"required"`
}

type UpdateBookingStatusDTO struct {
	Status   string `json:"status" binding:"required"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

type CreateBookingNoteDTO struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type AddTrackingEventDTO struct {
	Status     string `json:"status" binding:"required"`
	Location   string `json:"location"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurredAt"` // RFC 3339, defaults to now
}

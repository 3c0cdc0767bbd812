package models

import (
	"time"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/quotes"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPickedUp  BookingStatus = "PICKED_UP"
	BookingStatusInTransit BookingStatus = "IN_TRANSIT"
	BookingStatusDelivered BookingStatus = "DELIVERED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// bookingTransitions is the allowed forward path of a booking. Cancellation
// is only possible before pickup.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusPickedUp, BookingStatusCancelled},
	BookingStatusPickedUp:  {BookingStatusInTransit},
	BookingStatusInTransit: {BookingStatusDelivered},
}

func CanTransitionBooking(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusPickedUp,
		BookingStatusInTransit, BookingStatusDelivered, BookingStatusCancelled:
		return true
	}
	return false
}

type Attachment struct {
	PublicURL  string `bson:"publicUrl" json:"publicUrl"`
	ObjectName string `bson:"objectName" json:"objectName"`
	MimeType   string `bson:"mimeType" json:"mimeType"`
	SizeBytes  int64  `bson:"sizeBytes" json:"sizeBytes"`
}

type BookingAdminNote struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	AuthorID    bson.ObjectID `bson:"authorId" json:"authorId"`
	AuthorEmail string        `bson:"authorEmail" json:"authorEmail"`

	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Address struct {
	FullName string `bson:"fullName" json:"fullName"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Line1    string `bson:"line1" json:"line1"`
	Line2    string `bson:"line2,omitempty" json:"line2,omitempty"`
	City     string `bson:"city" json:"city"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Country  string `bson:"country" json:"country"`
}

// QuoteSnapshot freezes the carrier offer the user booked. Quote sets are
// ephemeral; only the chosen one survives, inside its booking.
type QuoteSnapshot struct {
	CarrierName           string   `bson:"carrierName" json:"carrierName"`
	ServiceLevel          string   `bson:"serviceLevel" json:"serviceLevel"`
	TotalCost             float64  `bson:"totalCost" json:"totalCost"`
	BaseRate              float64  `bson:"baseRate" json:"baseRate"`
	FuelSurcharge         float64  `bson:"fuelSurcharge" json:"fuelSurcharge"`
	InsuranceCost         float64  `bson:"insuranceCost" json:"insuranceCost"`
	AdditionalFees        float64  `bson:"additionalFees" json:"additionalFees"`
	ActualWeightKg        float64  `bson:"actualWeightKg" json:"actualWeightKg"`
	VolumetricWeightKg    *float64 `bson:"volumetricWeightKg,omitempty" json:"volumetricWeightKg,omitempty"`
	ChargeableWeightKg    float64  `bson:"chargeableWeightKg" json:"chargeableWeightKg"`
	EstimatedDeliveryDays int      `bson:"estimatedDeliveryDays" json:"estimatedDeliveryDays"`
}

type TrackingEvent struct {
	Status     BookingStatus `bson:"status" json:"status"`
	Location   string        `bson:"location,omitempty" json:"location,omitempty"`
	Message    string        `bson:"message,omitempty" json:"message,omitempty"`
	OccurredAt time.Time     `bson:"occurredAt" json:"occurredAt"`
}

type Booking struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID bson.ObjectID `bson:"userId" json:"userId"`

	AWB string `bson:"awb" json:"awb"` // unique tracking identifier

	ShipmentType  string          `bson:"shipmentType" json:"shipmentType"`
	Parcels       []quotes.Parcel `bson:"parcels" json:"parcels"`
	DeclaredValue float64         `bson:"declaredValue,omitempty" json:"declaredValue,omitempty"`

	Sender   Address `bson:"sender" json:"sender"`
	Receiver Address `bson:"receiver" json:"receiver"`

	Quote QuoteSnapshot `bson:"quote" json:"quote"`

	Status BookingStatus   `bson:"status" json:"status"`
	Events []TrackingEvent `bson:"events,omitempty" json:"events,omitempty"`

	LabelPDF        *Attachment `bson:"labelPdf,omitempty" json:"labelPdf,omitempty"`
	ProofOfDelivery *Attachment `bson:"proofOfDelivery,omitempty" json:"proofOfDelivery,omitempty"`

	Notes []BookingAdminNote `bson:"notes,omitempty" json:"notes,omitempty"`

	DeliveredAt *time.Time `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

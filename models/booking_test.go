package models

import "testing"

func TestCanTransitionBooking(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingStatusPending, BookingStatusConfirmed},
		{BookingStatusPending, BookingStatusCancelled},
		{BookingStatusConfirmed, BookingStatusPickedUp},
		{BookingStatusConfirmed, BookingStatusCancelled},
		{BookingStatusPickedUp, BookingStatusInTransit},
		{BookingStatusInTransit, BookingStatusDelivered},
	}
	for _, tt := range allowed {
		if !CanTransitionBooking(tt.from, tt.to) {
			t.Errorf("%s -> %s should be allowed", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{BookingStatusPending, BookingStatusDelivered},
		{BookingStatusPickedUp, BookingStatusCancelled},
		{BookingStatusInTransit, BookingStatusCancelled},
		{BookingStatusDelivered, BookingStatusCancelled},
		{BookingStatusDelivered, BookingStatusPending},
		{BookingStatusCancelled, BookingStatusConfirmed},
	}
	for _, tt := range denied {
		if CanTransitionBooking(tt.from, tt.to) {
			t.Errorf("%s -> %s should be denied", tt.from, tt.to)
		}
	}
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "PICKED_UP", "IN_TRANSIT", "DELIVERED", "CANCELLED"} {
		if !IsValidBookingStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []string{"", "pending", "LOST"} {
		if IsValidBookingStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

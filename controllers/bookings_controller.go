package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/database"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/dto"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/models"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/quotes"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func authedUserID(c *gin.Context) (bson.ObjectID, bool) {
	uidStr, ok := c.Get("userID")
	if !ok {
		return bson.ObjectID{}, false
	}
	uid, err := bson.ObjectIDFromHex(uidStr.(string))
	if err != nil {
		return bson.ObjectID{}, false
	}
	return uid, true
}

// CreateBooking books a selected carrier offer. The chargeable weight is
// recomputed server-side from the parcels; the client's copy is never trusted.
func CreateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		uid, ok := authedUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth user"})
			return
		}

		var body dto.CreateBookingDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		parcels := make([]quotes.Parcel, 0, len(body.Parcels))
		for _, p := range body.Parcels {
			parcels = append(parcels, quotes.Parcel{
				LengthCm: p.LengthCm,
				WidthCm:  p.WidthCm,
				HeightCm: p.HeightCm,
				WeightKg: p.WeightKg,
				Quantity: p.Quantity,
			})
		}

		origin := strings.ToUpper(strings.TrimSpace(body.Sender.Country))
		dest := strings.ToUpper(strings.TrimSpace(body.Receiver.Country))
		international := origin != dest

		// The booked carrier must exist and be active; its divisor drives
		// the billed weight.
		var carrier models.Carrier
		carriersCol := database.OpenCollection("carriers")
		if err := carriersCol.FindOne(ctx, bson.M{"name": body.Quote.CarrierName, "isActive": true}).Decode(&carrier); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or inactive carrier"})
			return
		}

		divisor := carrier.VolumetricDivisor(international)
		if divisor <= 0 {
			divisor = utils.VolumetricDivisor(international)
		}

		req, err := quotes.AssembleRateRequest(
			quotes.ShipmentType(body.ShipmentType),
			parcels,
			origin, dest,
			body.DeclaredValue,
			divisor,
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actualKg := totalActualWeight(req.Parcels)
		volumetric := totalVolumetricWeight(req.Parcels, divisor)
		now := time.Now().UTC()

		booking := models.Booking{
			ID:            bson.NewObjectID(),
			UserID:        uid,
			AWB:           utils.GenerateAWB(),
			ShipmentType:  body.ShipmentType,
			Parcels:       req.Parcels,
			DeclaredValue: body.DeclaredValue,
			Sender:        addressFromDTO(body.Sender),
			Receiver:      addressFromDTO(body.Receiver),
			Quote: models.QuoteSnapshot{
				CarrierName:           body.Quote.CarrierName,
				ServiceLevel:          body.Quote.ServiceLevel,
				TotalCost:             body.Quote.TotalCost,
				BaseRate:              body.Quote.BaseRate,
				FuelSurcharge:         body.Quote.FuelSurcharge,
				InsuranceCost:         body.Quote.InsuranceCost,
				AdditionalFees:        body.Quote.AdditionalFees,
				ActualWeightKg:        actualKg,
				VolumetricWeightKg:    volumetric,
				ChargeableWeightKg:    req.ChargeableKg,
				EstimatedDeliveryDays: body.Quote.EstimatedDeliveryDays,
			},
			Status: models.BookingStatusPending,
			Events: []models.TrackingEvent{{
				Status:     models.BookingStatusPending,
				Message:    "Booking created",
				OccurredAt: now,
			}},
			CreatedAt: now,
			UpdatedAt: now,
		}

		bookingsCol := database.OpenCollection("bookings")
		if _, err := bookingsCol.InsertOne(ctx, booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":     booking.ID,
			"awb":    booking.AWB,
			"status": booking.Status,
			"quote":  booking.Quote,
		})
	}
}

func addressFromDTO(a dto.AddressDTO) models.Address {
	return models.Address{
		FullName: strings.TrimSpace(a.FullName),
		Phone:    strings.TrimSpace(a.Phone),
		Line1:    strings.TrimSpace(a.Line1),
		Line2:    strings.TrimSpace(a.Line2),
		City:     strings.TrimSpace(a.City),
		Pincode:  strings.TrimSpace(a.Pincode),
		Country:  strings.ToUpper(strings.TrimSpace(a.Country)),
	}
}

// GetMyOrders lists the caller's bookings, newest first.
func GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		uid, ok := authedUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth user"})
			return
		}

		maxLimit, defaultLimit := utils.GetDefaultQueryLimits()
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), defaultLimit)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		skip := int64((page - 1) * limit)

		filter := bson.M{"userId": uid}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			if !models.IsValidBookingStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
				return
			}
			filter["status"] = status
		}

		col := database.OpenCollection("bookings")
		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Booking, 0)
		for cursor.Next(ctx) {
			var b models.Booking
			if err := cursor.Decode(&b); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, b)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

func GetMyOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		uid, ok := authedUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth user"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var booking models.Booking
		col := database.OpenCollection("bookings")
		if err := col.FindOne(ctx, bson.M{"_id": id, "userId": uid}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

// CancelBooking lets the owner cancel while the shipment has not been picked up.
func CancelBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		uid, ok := authedUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth user"})
			return
		}

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var booking models.Booking
		col := database.OpenCollection("bookings")
		if err := col.FindOne(ctx, bson.M{"_id": id, "userId": uid}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		if !models.CanTransitionBooking(booking.Status, models.BookingStatusCancelled) {
			c.JSON(http.StatusConflict, gin.H{"error": "booking can no longer be cancelled"})
			return
		}

		now := time.Now().UTC()
		event := models.TrackingEvent{
			Status:     models.BookingStatusCancelled,
			Message:    "Cancelled by customer",
			OccurredAt: now,
		}

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": id, "userId": uid, "status": booking.Status},
			bson.M{
				"$set":  bson.M{"status": models.BookingStatusCancelled, "updatedAt": now},
				"$push": bson.M{"events": event},
			})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "booking changed, refresh and retry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": models.BookingStatusCancelled})
	}
}

// TrackShipment is the public tracking view: status and event history for an
// AWB, without addresses or pricing.
func TrackShipment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		awb := strings.ToUpper(strings.TrimSpace(c.Param("awb")))
		if awb == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing awb"})
			return
		}

		var booking models.Booking
		col := database.OpenCollection("bookings")
		if err := col.FindOne(ctx, bson.M{"awb": awb}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "shipment not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"awb":           booking.AWB,
			"carrierName":   booking.Quote.CarrierName,
			"serviceLevel":  booking.Quote.ServiceLevel,
			"status":        booking.Status,
			"events":        booking.Events,
			"estimatedDays": booking.Quote.EstimatedDeliveryDays,
			"deliveredAt":   booking.DeliveredAt,
		})
	}
}

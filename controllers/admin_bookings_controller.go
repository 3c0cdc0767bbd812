package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/database"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/dto"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/models"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func AdminGetBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

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

		filter := bson.M{}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			if !models.IsValidBookingStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
				return
			}
			filter["status"] = status
		}
		if carrier := strings.TrimSpace(c.Query("carrier")); carrier != "" {
			filter["quote.carrierName"] = carrier
		}
		if awb := strings.ToUpper(strings.TrimSpace(c.Query("awb"))); awb != "" {
			filter["awb"] = awb
		}

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

func AdminGetBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var booking models.Booking
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

// AdminUpdateBookingStatus moves a booking along its lifecycle and records
// the transition as a tracking event.
func AdminUpdateBookingStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var body dto.UpdateBookingStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsValidBookingStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		newStatus := models.BookingStatus(body.Status)

		var booking models.Booking
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		if !models.CanTransitionBooking(booking.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "invalid status transition",
				"from":  booking.Status,
				"to":    newStatus,
			})
			return
		}

		now := time.Now().UTC()
		set := bson.M{"status": newStatus, "updatedAt": now}
		if newStatus == models.BookingStatusDelivered {
			set["deliveredAt"] = now
		}

		event := models.TrackingEvent{
			Status:     newStatus,
			Location:   strings.TrimSpace(body.Location),
			Message:    strings.TrimSpace(body.Message),
			OccurredAt: now,
		}

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": id, "status": booking.Status},
			bson.M{"$set": set, "$push": bson.M{"events": event}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "booking changed, refresh and retry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": newStatus})
	}
}

// AdminAddTrackingEvent appends a carrier scan to a booking without changing
// its status (e.g. an in-transit hub update).
func AdminAddTrackingEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var body dto.AddTrackingEventDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.IsValidBookingStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		occurredAt := time.Now().UTC()
		if body.OccurredAt != "" {
			parsed, err := time.Parse(time.RFC3339, body.OccurredAt)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "occurredAt must be RFC 3339"})
				return
			}
			occurredAt = parsed.UTC()
		}

		event := models.TrackingEvent{
			Status:     models.BookingStatus(body.Status),
			Location:   strings.TrimSpace(body.Location),
			Message:    strings.TrimSpace(body.Message),
			OccurredAt: occurredAt,
		}

		res, err := col.UpdateByID(ctx, id, bson.M{
			"$push": bson.M{"events": event},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}

func AdminAddBookingNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")
		usersCol := database.OpenCollection("users")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		var body dto.CreateBookingNoteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authedUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth user"})
			return
		}

		var user models.User
		if err := usersCol.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		now := time.Now().UTC()
		note := models.BookingAdminNote{
			ID:          bson.NewObjectID(),
			AuthorID:    uid,
			AuthorEmail: user.Email,
			Content:     strings.TrimSpace(body.Content),
			CreatedAt:   now,
		}

		res, err := col.UpdateByID(ctx, id, bson.M{
			"$push": bson.M{"notes": note},
			"$set":  bson.M{"updatedAt": now},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add note", "details": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"noteId": note.ID})
	}
}

// AdminUploadLabel attaches the carrier's shipping label PDF to a booking
// and confirms it in the same update.
func AdminUploadLabel() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		fh, err := c.FormFile("labelPdf")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing labelPdf file"})
			return
		}
		if fh.Size > 10*1024*1024 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "labelPdf too large (max 10MB)"})
			return
		}

		var booking models.Booking
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		gcsClient, bucket, err := utils.NewGCSClient(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init gcs client"})
			return
		}

		att, err := utils.UploadLabelPDFToGCS(ctx, gcsClient, bucket, id.Hex(), fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "label upload failed", "details": err.Error()})
			return
		}

		now := time.Now().UTC()
		set := bson.M{"labelPdf": att, "updatedAt": now}
		update := bson.M{"$set": set}
		if booking.Status == models.BookingStatusPending {
			set["status"] = models.BookingStatusConfirmed
			update["$push"] = bson.M{"events": models.TrackingEvent{
				Status:     models.BookingStatusConfirmed,
				Message:    "Label generated, booking confirmed",
				OccurredAt: now,
			}}
		}

		res, err := col.UpdateByID(ctx, id, update)
		if err != nil {
			// cleanup uploaded file best effort
			_ = utils.DeleteGCSObjects(ctx, gcsClient, bucket, []string{att.ObjectName})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach label", "details": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			_ = utils.DeleteGCSObjects(ctx, gcsClient, bucket, []string{att.ObjectName})
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"labelPdfUrl": att.PublicURL})
	}
}

// AdminUploadProofOfDelivery attaches the delivery photo to a delivered
// booking.
func AdminUploadProofOfDelivery(v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("bookings")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
			return
		}

		fh, err := c.FormFile("proof")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing proof file"})
			return
		}
		if _, err := v.ValidateFile(fh); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var booking models.Booking
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if booking.Status != models.BookingStatusDelivered {
			c.JSON(http.StatusConflict, gin.H{"error": "booking is not delivered yet"})
			return
		}

		r2, err := utils.NewR2Client(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
			return
		}

		att, err := utils.UploadProofOfDeliveryToR2(ctx, r2, booking.AWB, fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "proof upload failed", "details": err.Error()})
			return
		}

		now := time.Now().UTC()
		if _, err := col.UpdateByID(ctx, id, bson.M{
			"$set": bson.M{"proofOfDelivery": att, "updatedAt": now},
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach proof", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"proofUrl": att.PublicURL})
	}
}

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

func AddCarrier() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("carriers")

		var body dto.CreateCarrierDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		name := strings.TrimSpace(body.Name)
		code := strings.TrimSpace(body.Code)
		if code == "" {
			code = utils.GenerateCarrierCode(name)
		}

		now := time.Now().UTC()
		doc := models.Carrier{
			Name:                 name,
			Code:                 code,
			DivisorDomestic:      body.DivisorDomestic,
			DivisorInternational: body.DivisorInternational,
			ServiceLevels:        body.ServiceLevels,
			SupportsDocuments:    body.SupportsDocuments,
			IsActive:             body.IsActive,
			LogoURL:              strings.TrimSpace(body.LogoURL),
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "code already exists", "field": "code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID, "code": code})
	}
}

// GetCarriers serves the public carrier directory. Admin callers can pass
// ?isActive=false to see disabled carriers too.
func GetCarriers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("carriers")

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 50)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}
		skip := int64((page - 1) * limit)

		filter := bson.M{"isActive": true}
		if b, err := utils.ParseBoolQuery(c.Query("isActive")); err == nil && b != nil {
			filter["isActive"] = *b
		}
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			filter["name"] = bson.M{"$regex": q, "$options": "i"}
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "name", Value: 1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Carrier, 0)
		for cursor.Next(ctx) {
			var carrier models.Carrier
			if err := cursor.Decode(&carrier); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, carrier)
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

func GetCarrier() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("carriers")

		idHex := c.Param("id")
		code := strings.TrimSpace(c.Param("code"))
		if idHex == "" && code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no id or code provided"})
			return
		}

		filter := bson.M{"code": code}
		if idHex != "" {
			id, err := bson.ObjectIDFromHex(idHex)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carrier id"})
				return
			}
			filter = bson.M{"_id": id}
		}

		var carrier models.Carrier
		if err := col.FindOne(ctx, filter).Decode(&carrier); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "carrier not found"})
			return
		}

		c.JSON(http.StatusOK, carrier)
	}
}

func UpdateCarrier() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("carriers")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carrier id"})
			return
		}

		var body dto.UpdateCarrierDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		if body.Name != nil {
			v := strings.TrimSpace(*body.Name)
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			set["name"] = v
		}
		if body.Code != nil {
			v := strings.TrimSpace(*body.Code)
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "code cannot be empty"})
				return
			}
			set["code"] = v
		}
		if body.DivisorDomestic != nil {
			if *body.DivisorDomestic <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "divisorDomestic must be positive"})
				return
			}
			set["divisorDomestic"] = *body.DivisorDomestic
		}
		if body.DivisorInternational != nil {
			if *body.DivisorInternational <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "divisorInternational must be positive"})
				return
			}
			set["divisorInternational"] = *body.DivisorInternational
		}
		if body.ServiceLevels != nil {
			if len(*body.ServiceLevels) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "serviceLevels cannot be empty"})
				return
			}
			for _, s := range *body.ServiceLevels {
				if !quotes.IsValidServiceLevel(s) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service level: " + s})
					return
				}
			}
			set["serviceLevels"] = *body.ServiceLevels
		}
		if body.SupportsDocuments != nil {
			set["supportsDocuments"] = *body.SupportsDocuments
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}
		if body.LogoURL != nil {
			set["logoUrl"] = strings.TrimSpace(*body.LogoURL)
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}
		set["updatedAt"] = time.Now().UTC()

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "code already exists", "field": "code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "carrier not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func DeleteCarrier() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("carriers")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carrier id"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "carrier not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

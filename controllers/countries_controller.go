package controllers

import (
	"net/http"
	"strings"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/database"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/dto"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/models"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func AdminAddPriorityCountry() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("priority_countries")

		var body dto.CreatePriorityCountryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doc := models.PriorityCountry{
			Name:     strings.TrimSpace(body.Name),
			Code:     strings.ToUpper(strings.TrimSpace(body.Code)),
			Region:   strings.TrimSpace(body.Region),
			IsActive: body.IsActive,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "country code already exists", "field": "code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID})
	}
}

func AdminGetPriorityCountries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("priority_countries")

		filter := bson.M{}
		if b, err := utils.ParseBoolQuery(c.Query("isActive")); err == nil && b != nil {
			filter["isActive"] = *b
		}

		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.PriorityCountry, 0)
		for cursor.Next(ctx) {
			var pc models.PriorityCountry
			if err := cursor.Decode(&pc); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, pc)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func AdminUpdatePriorityCountry() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("priority_countries")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country id"})
			return
		}

		var body dto.UpdatePriorityCountryDTO
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
			v := strings.ToUpper(strings.TrimSpace(*body.Code))
			if len(v) != 2 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "code must be two letters"})
				return
			}
			set["code"] = v
		}
		if body.Region != nil {
			set["region"] = strings.TrimSpace(*body.Region)
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "country code already exists", "field": "code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func AdminDeletePriorityCountry() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("priority_countries")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country id"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/database"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/dto"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/models"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/pricing"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/quotes"
	"github.com/ShwetaRajputsk/xfasbackend-sub001/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetQuotes assembles the rate request, fetches raw carrier rates from the
// pricing service, computes chargeable weights with the lane's volumetric
// divisor, then filters, ranks and badges the offers for presentation.
func GetQuotes(client *pricing.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.GetQuotesDTO
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

		origin := strings.ToUpper(strings.TrimSpace(body.OriginCountry))
		dest := strings.ToUpper(strings.TrimSpace(body.DestCountry))
		international := origin != dest
		divisor := utils.VolumetricDivisor(international)

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

		resp, err := client.GetRates(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrBadRequest):
				c.JSON(http.StatusBadRequest, gin.H{"error": "pricing service rejected the request"})
			case errors.Is(err, pricing.ErrBadResponse):
				c.JSON(http.StatusBadGateway, gin.H{"error": "pricing service returned an unusable response"})
			default:
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pricing service unavailable, please try again"})
			}
			return
		}

		// Carriers disabled in the admin console never surface, whatever the
		// pricing service returns.
		active, err := activeCarriersByName(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		actualKg := totalActualWeight(req.Parcels)

		offers := make([]quotes.CarrierQuote, 0, len(resp.Quotes))
		for _, raw := range resp.Quotes {
			carrier, ok := active[raw.CarrierName]
			if !ok {
				continue
			}
			if !quotes.IsValidServiceLevel(raw.ServiceLevel) {
				continue
			}
			if req.ShipmentType == quotes.ShipmentDocument && !carrier.SupportsDocuments {
				continue
			}

			// Each carrier bills on its own configured divisor; the lane
			// default only covers carriers with none set.
			carrierDivisor := carrier.VolumetricDivisor(international)
			if carrierDivisor <= 0 {
				carrierDivisor = divisor
			}
			volumetric := totalVolumetricWeight(req.Parcels, carrierDivisor)

			offers = append(offers, quotes.CarrierQuote{
				CarrierName:           raw.CarrierName,
				ServiceLevel:          quotes.ServiceLevel(raw.ServiceLevel),
				TotalCost:             raw.TotalCost,
				BaseRate:              raw.BaseRate,
				FuelSurcharge:         raw.FuelSurcharge,
				InsuranceCost:         raw.InsuranceCost,
				AdditionalFees:        raw.AdditionalFees,
				ActualWeightKg:        actualKg,
				VolumetricWeightKg:    volumetric,
				ChargeableWeightKg:    quotes.TotalChargeableWeight(req.Parcels, carrierDivisor),
				EstimatedDeliveryDays: raw.EstimatedDeliveryDays,
			})
		}

		offers = quotes.FilterByServiceLevel(offers, body.ServiceLevel)

		policy := quotes.SortByCost
		if body.SortBy == string(quotes.SortRecommended) {
			policy = quotes.SortRecommended
		}
		offers = quotes.Rank(offers, policy, resp.RecommendedCarrier)
		quotes.AssignBadges(offers, resp.RecommendedCarrier)

		c.JSON(http.StatusOK, gin.H{
			"carrier_quotes":      offers,
			"recommended_carrier": resp.RecommendedCarrier,
			"chargeable_weight":   req.ChargeableKg,
			"international":       req.International,
		})
	}
}

func activeCarriersByName(c *gin.Context) (map[string]models.Carrier, error) {
	col := database.OpenCollection("carriers")

	cursor, err := col.Find(c.Request.Context(), bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c.Request.Context())

	out := make(map[string]models.Carrier)
	for cursor.Next(c.Request.Context()) {
		var carrier models.Carrier
		if err := cursor.Decode(&carrier); err != nil {
			return nil, err
		}
		out[carrier.Name] = carrier
	}
	return out, cursor.Err()
}

func totalActualWeight(parcels []quotes.Parcel) float64 {
	var total float64
	for _, p := range parcels {
		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}
		total += p.WeightKg * float64(qty)
	}
	return total
}

// totalVolumetricWeight is nil when no parcel line carries dimensions.
func totalVolumetricWeight(parcels []quotes.Parcel, divisor float64) *float64 {
	var total float64
	found := false
	for _, p := range parcels {
		v := quotes.VolumetricWeight(p, divisor)
		if v == nil {
			continue
		}
		found = true
		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}
		total += *v * float64(qty)
	}
	if !found {
		return nil
	}
	return &total
}

// GetPriorityCountries serves the advertised priority connection lanes.
func GetPriorityCountries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("priority_countries")

		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		cursor, err := col.Find(ctx, bson.M{"isActive": true}, opts)
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

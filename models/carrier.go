package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Carrier is an admin-managed carrier configuration. The divisors feed the
// volumetric weight rule: package volume in cm³ divided by the divisor for
// the shipment's lane (domestic vs international).
type Carrier struct {
	ID                   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                 string        `bson:"name" json:"name"`
	Code                 string        `bson:"code" json:"code"` // slug, unique
	DivisorDomestic      float64       `bson:"divisorDomestic" json:"divisorDomestic"`
	DivisorInternational float64       `bson:"divisorInternational" json:"divisorInternational"`
	ServiceLevels        []string      `bson:"serviceLevels" json:"serviceLevels"`
	SupportsDocuments    bool          `bson:"supportsDocuments" json:"supportsDocuments"`
	IsActive             bool          `bson:"isActive" json:"isActive"`
	LogoURL              string        `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	CreatedAt            time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// VolumetricDivisor picks the carrier's divisor for a lane. Returns 0 when
// the carrier has none configured; callers fall back to the platform default.
func (c Carrier) VolumetricDivisor(international bool) float64 {
	if international {
		return c.DivisorInternational
	}
	return c.DivisorDomestic
}

// PriorityCountry is a lane the marketplace advertises priority connections
// for, served on the public quotes surface.
type PriorityCountry struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Code     string        `bson:"code" json:"code"` // ISO 3166-1 alpha-2
	Region   string        `bson:"region,omitempty" json:"region,omitempty"`
	IsActive bool          `bson:"isActive" json:"isActive"`
}

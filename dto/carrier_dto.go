package dto

type CreateCarrierDTO struct {
	Name                 string   `json:"name" binding:"required"`
	Code                 string   `json:"code"` // auto-generated from Name if empty
	DivisorDomestic      float64  `json:"divisorDomestic" binding:"required,gt=0"`
	DivisorInternational float64  `json:"divisorInternational" binding:"required,gt=0"`
	ServiceLevels        []string `json:"serviceLevels" binding:"required,min=1,dive,oneof=standard express economy overnight"`
	SupportsDocuments    bool     `json:"supportsDocuments"`
	IsActive             bool     `json:"isActive"`
	LogoURL              string   `json:"logoUrl"`
}

type UpdateCarrierDTO struct {
	Name                 *string   `json:"name,omitempty"`
	Code                 *string   `json:"code,omitempty"`
	DivisorDomestic      *float64  `json:"divisorDomestic,omitempty"`
	DivisorInternational *float64  `json:"divisorInternational,omitempty"`
	ServiceLevels        *[]string `json:"serviceLevels,omitempty"`
	SupportsDocuments    *bool     `json:"supportsDocuments,omitempty"`
	IsActive             *bool     `json:"isActive,omitempty"`
	LogoURL              *string   `json:"logoUrl,omitempty"`
}

type CreatePriorityCountryDTO struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required,len=2"`
	Region   string `json:"region"`
	IsActive bool   `json:"isActive"`
}

type UpdatePriorityCountryDTO struct {
	Name     *string `json:"name,omitempty"`
	Code     *string `json:"code,omitempty"`
	Region   *string `json:"region,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

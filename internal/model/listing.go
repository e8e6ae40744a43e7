package model

import (
	"time"
)

// Property types
const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
)

// Budget units. One crore is one hundred lakhs.
const (
	UnitLakhs  = "lakhs"
	UnitCrores = "crores"
)

// PropertyListing represents a property listed for purchase, rent or lease
type PropertyListing struct {
	ID             int64      `json:"id" db:"id" yaml:"id"`
	Slug           string     `json:"slug" db:"slug" yaml:"slug"`
	ProjectName    *string    `json:"project_name,omitempty" db:"project_name" yaml:"project_name"`
	PropertyType   string     `json:"property_type" db:"property_type" yaml:"property_type"`
	Category       string     `json:"category" db:"category" yaml:"category"`
	Configuration  *string    `json:"configuration,omitempty" db:"configuration" yaml:"configuration"`
	CommercialType *string    `json:"commercial_type,omitempty" db:"commercial_type" yaml:"commercial_type"`
	Status         *string    `json:"status,omitempty" db:"status" yaml:"status"`
	Furnishing     *string    `json:"furnishing,omitempty" db:"furnishing" yaml:"furnishing"`
	Area           float64    `json:"area" db:"area" yaml:"area"` // sqft
	MinBudget      *float64   `json:"min_budget,omitempty" db:"min_budget" yaml:"min_budget"`
	MinBudgetUnit  string     `json:"min_budget_unit" db:"min_budget_unit" yaml:"min_budget_unit"`
	MaxBudget      *float64   `json:"max_budget,omitempty" db:"max_budget" yaml:"max_budget"`
	MaxBudgetUnit  string     `json:"max_budget_unit" db:"max_budget_unit" yaml:"max_budget_unit"`
	LocationID     *int64     `json:"location_id,omitempty" db:"location_id" yaml:"location_id"`
	LocationName   *string    `json:"location,omitempty" db:"location_name" yaml:"location"`
	IsActive       bool       `json:"is_active" db:"is_property_active" yaml:"active"`
	CreatedAt      *time.Time `json:"created_at,omitempty" db:"created_at" yaml:"created_at"`
}

// MinBudgetLakhs returns the minimum budget normalised to lakhs
func (p *PropertyListing) MinBudgetLakhs() (float64, bool) {
	if p.MinBudget == nil {
		return 0, false
	}
	return ToLakhs(*p.MinBudget, p.MinBudgetUnit), true
}

// MaxBudgetLakhs returns the maximum budget normalised to lakhs
func (p *PropertyListing) MaxBudgetLakhs() (float64, bool) {
	if p.MaxBudget == nil {
		return 0, false
	}
	return ToLakhs(*p.MaxBudget, p.MaxBudgetUnit), true
}

// ToLakhs converts an amount in the given unit to lakhs
func ToLakhs(amount float64, unit string) float64 {
	if unit == UnitCrores {
		return amount * 100
	}
	return amount
}

// Location is a named area listings belong to
type Location struct {
	ID   int64  `json:"id" db:"id" yaml:"id"`
	Name string `json:"name" db:"name" yaml:"name"`
}

// SellKind selects which owner-submitted listing table to read
type SellKind string

const (
	SellResidential SellKind = "residential"
	SellCommercial  SellKind = "commercial"
)

// SellListing is an owner-submitted property awaiting or holding admin approval
type SellListing struct {
	ID             int64    `json:"id" db:"id" yaml:"id"`
	Kind           SellKind `json:"kind" db:"-" yaml:"kind"`
	ProjectName    string   `json:"project_name" db:"project_name" yaml:"project_name"`
	Configuration  *string  `json:"configuration,omitempty" db:"configuration" yaml:"configuration"`
	CommercialType *string  `json:"commercial_type,omitempty" db:"commercial_type" yaml:"commercial_type"`
	Status         *string  `json:"status,omitempty" db:"status" yaml:"status"`
	Area           float64  `json:"area" db:"area" yaml:"area"`
	Budget         int64    `json:"budget" db:"budget" yaml:"budget"` // rupees
	LocationID     *int64   `json:"location_id,omitempty" db:"location_id" yaml:"location_id"`
	LocationName   *string  `json:"location,omitempty" db:"location_name" yaml:"location"`
	ContactName    *string  `json:"contact_name,omitempty" db:"contact_name" yaml:"contact_name"`
	ContactNumber  *string  `json:"contact_number,omitempty" db:"contact_number" yaml:"contact_number"`
	ContactEmail   string   `json:"contact_email" db:"contact_email" yaml:"contact_email"`
	IsApproved     bool     `json:"is_approved" db:"is_approved" yaml:"approved"`
}

// InteriorDesignRequest is a callback request for the interior design service
type InteriorDesignRequest struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	PropertyType string    `json:"property_type" db:"property_types"`
	Sqft         *int64    `json:"sqft,omitempty" db:"sqft"`
	ServiceType  string    `json:"service_type" db:"service_types"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// FeatureAmenity is a project feature such as a swimming pool or gym
type FeatureAmenity struct {
	ID   int64  `json:"id" db:"id" yaml:"id"`
	Name string `json:"name" db:"name" yaml:"name"`
}

// NearbyPlace is a point of interest close to a project
type NearbyPlace struct {
	ID            int64   `json:"id" db:"id" yaml:"id"`
	Name          string  `json:"name" db:"name" yaml:"name"`
	DistanceValue float64 `json:"distance_value" db:"distance_value" yaml:"distance_value"`
	DistanceUnit  string  `json:"distance_unit" db:"distance_unit" yaml:"distance_unit"` // km or m
}

// PropertyInquiry is a contact request left on a listing
type PropertyInquiry struct {
	ID         int64     `json:"id" db:"id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ListingDetail is a listing with the records shown on its detail page
type ListingDetail struct {
	Listing          PropertyListing   `json:"listing"`
	Related          []PropertyListing `json:"related_properties"`
	FeatureAmenities []FeatureAmenity  `json:"feature_amenities"`
	NearbyPlaces     []NearbyPlace     `json:"nearby_places"`
}

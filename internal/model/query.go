package model

// SortOrder controls the listing order returned by the catalog
type SortOrder int

const (
	// NewestFirst orders by descending id, using insertion order as recency
	NewestFirst SortOrder = iota
	// OldestFirst orders by ascending id
	OldestFirst
)

// ListingFilter is a conjunctive filter over property listings. Nil fields are
// not applied. Budget bounds are expressed in lakhs and compared against the
// unit-normalised listing budgets.
type ListingFilter struct {
	ActiveOnly     bool
	PropertyType   *string
	Category       *string
	Configuration  *string
	CommercialType *string
	Location       *string // case-insensitive substring of the location name
	LocationID     *int64
	Status         *string
	MinBudgetMin   *float64 // min_budget >= value
	MaxBudgetMax   *float64 // max_budget <= value
	AreaMin        *float64
	AreaMax        *float64
	Search         string // project name, configuration or location name
	Order          SortOrder
}

// ChatRequest represents a chat message sent to the assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Response string `json:"response"`
	Intent   Intent `json:"intent"`
	Took     int64  `json:"took_ms"` // Response time in milliseconds
}

// ListingsRequest represents the browse filters accepted by the listing endpoint
type ListingsRequest struct {
	PropertyType  string   `form:"property_type"`
	Category      string   `form:"category"`
	Configuration string   `form:"configuration"`
	LocationID    *int64   `form:"location"`
	Status        string   `form:"status"`
	MinBudget     *float64 `form:"min_budget"`
	MaxBudget     *float64 `form:"max_budget"`
	Search        string   `form:"search"`
	Page          string   `form:"page"`
}

// ListingsResponse represents a page of browse results
type ListingsResponse struct {
	Results     []PropertyListing `json:"results"`
	Locations   []Location        `json:"locations"`
	Total       int               `json:"total"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalPages  int               `json:"total_pages"`
	HasPrevious bool              `json:"has_previous"`
	HasNext     bool              `json:"has_next"`
}

// InquiryRequest represents a contact request on a listing
type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// InquiryResponse represents the inquiry submission result
type InquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SellListingRequest represents an owner's property submission. Residential
// submissions name a configuration, commercial ones a commercial type.
type SellListingRequest struct {
	ProjectName    string  `json:"project_name" binding:"required,max=100"`
	Configuration  string  `json:"configuration"`
	CommercialType string  `json:"commercial_type"`
	Status         string  `json:"status" binding:"omitempty,oneof=new resale rent lease"`
	Area           float64 `json:"area" binding:"required,gt=0"`
	Budget         int64   `json:"budget" binding:"required,gt=0"`
	LocationID     *int64  `json:"location_id"`
	ContactName    string  `json:"contact_name" binding:"max=20"`
	ContactNumber  string  `json:"contact_number" binding:"max=15"`
	ContactEmail   string  `json:"contact_email" binding:"required,email"`
}

// InteriorDesignRequestBody represents the interior design callback form
type InteriorDesignRequestBody struct {
	Name         string `json:"name" binding:"required,max=100"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	PropertyType string `json:"property_type" binding:"required,oneof=flat bungalow penthouse"`
	Sqft         *int64 `json:"sqft" binding:"omitempty,gt=0"`
	ServiceType  string `json:"service_type" binding:"required,oneof=turnkey consultancy"`
}

// SubmissionResponse represents the result of a form submission
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

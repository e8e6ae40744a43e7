package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"horizonbot/internal/model"
)

// ErrInvalidSubmission is returned when a sell or interior design form fails
// the checks the request binding cannot express
var ErrInvalidSubmission = errors.New("invalid submission")

var (
	residentialConfigurations = []string{"1bhk", "2bhk", "3bhk", "4bhk", "5bhk", "duplex", "tenament", "bungalow", "villa", "other"}
	commercialTypes           = []string{"showroom", "office", "shop", "corporate_floors", "other"}

	phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

// SubmissionStore persists owner listings and interior design requests
type SubmissionStore interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	CreateSellListing(ctx context.Context, listing *model.SellListing) error
	CreateInteriorDesignRequest(ctx context.Context, req *model.InteriorDesignRequest) error
}

// SubmissionService handles the sell and interior design forms
type SubmissionService struct {
	store SubmissionStore
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(store SubmissionStore) *SubmissionService {
	return &SubmissionService{store: store}
}

// SubmitSellListing stores an owner listing awaiting approval. Submissions
// never appear in chat replies until an operator approves them.
func (s *SubmissionService) SubmitSellListing(ctx context.Context, kind model.SellKind, req *model.SellListingRequest) (*model.SellListing, error) {
	listing := &model.SellListing{
		Kind:          kind,
		ProjectName:   strings.TrimSpace(req.ProjectName),
		Area:          req.Area,
		Budget:        req.Budget,
		LocationID:    req.LocationID,
		ContactName:   optional(req.ContactName),
		ContactNumber: optional(req.ContactNumber),
		ContactEmail:  strings.TrimSpace(req.ContactEmail),
		IsApproved:    false,
	}
	if listing.ProjectName == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidSubmission)
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = "new"
	}
	listing.Status = &status

	switch kind {
	case model.SellResidential:
		config, err := choice("configuration", req.Configuration, residentialConfigurations)
		if err != nil {
			return nil, err
		}
		listing.Configuration = config
	case model.SellCommercial:
		commercialType, err := choice("commercial type", req.CommercialType, commercialTypes)
		if err != nil {
			return nil, err
		}
		listing.CommercialType = commercialType
	default:
		return nil, fmt.Errorf("%w: unknown sell listing kind %q", ErrInvalidSubmission, kind)
	}

	if listing.LocationID != nil {
		name, err := s.locationName(ctx, *listing.LocationID)
		if err != nil {
			return nil, err
		}
		listing.LocationName = &name
	}

	if err := s.store.CreateSellListing(ctx, listing); err != nil {
		return nil, catalogErr("create sell listing", err)
	}
	return listing, nil
}

// SubmitInteriorDesign stores an interior design callback request
func (s *SubmissionService) SubmitInteriorDesign(ctx context.Context, body *model.InteriorDesignRequestBody) (*model.InteriorDesignRequest, error) {
	phone := strings.TrimSpace(body.PhoneNumber)
	if !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("%w: phone number must be 9 to 15 digits with an optional leading +", ErrInvalidSubmission)
	}

	req := &model.InteriorDesignRequest{
		Name:         strings.TrimSpace(body.Name),
		PhoneNumber:  phone,
		PropertyType: body.PropertyType,
		Sqft:         body.Sqft,
		ServiceType:  body.ServiceType,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateInteriorDesignRequest(ctx, req); err != nil {
		return nil, catalogErr("create interior design request", err)
	}
	return req, nil
}

func (s *SubmissionService) locationName(ctx context.Context, id int64) (string, error) {
	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return "", catalogErr("list locations", err)
	}
	for _, l := range locations {
		if l.ID == id {
			return l.Name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown location %d", ErrInvalidSubmission, id)
}

// choice lower-cases value and checks it against allowed; empty is nil
func choice(field, value string, allowed []string) (*string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return nil, nil
	}
	for _, a := range allowed {
		if v == a {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown %s %q", ErrInvalidSubmission, field, value)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

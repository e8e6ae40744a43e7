package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"horizonbot/internal/model"
)

// ErrListingNotFound is returned when no listing has the requested slug
var ErrListingNotFound = errors.New("listing not found")

// DefaultPageSize is the number of listings on one browse page
const DefaultPageSize = 6

// ListingService handles the browse, detail and inquiry business logic
type ListingService struct {
	store    ListingStore
	pageSize int
}

// NewListingService creates a new listing service
func NewListingService(store ListingStore, pageSize int) *ListingService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ListingService{
		store:    store,
		pageSize: pageSize,
	}
}

// BuildBrowseFilter converts browse query parameters into a catalog filter
func BuildBrowseFilter(req *model.ListingsRequest) model.ListingFilter {
	filter := model.ListingFilter{
		ActiveOnly: true,
		LocationID: req.LocationID,
		Search:     strings.TrimSpace(req.Search),
		Order:      model.OldestFirst,
	}
	if req.PropertyType != "" {
		filter.PropertyType = &req.PropertyType
	}
	if req.Category != "" && req.Category != "all" {
		filter.Category = &req.Category
	}
	if req.Configuration != "" {
		filter.Configuration = &req.Configuration
	}
	if req.Status != "" {
		filter.Status = &req.Status
	}
	if req.MinBudget != nil {
		v := *req.MinBudget
		filter.MinBudgetMin = &v
	}
	if req.MaxBudget != nil {
		v := *req.MaxBudget
		filter.MaxBudgetMax = &v
	}
	return filter
}

// List returns one page of active listings matching the request.
// A page that is not a number resolves to the first page; a page outside
// 1..TotalPages resolves to the last one.
func (s *ListingService) List(ctx context.Context, req *model.ListingsRequest) (*model.ListingsResponse, error) {
	filter := BuildBrowseFilter(req)

	page := parsePage(req.Page)
	queried := max(page, 1)
	listings, total, err := s.store.ListListings(ctx, filter, s.pageSize, (queried-1)*s.pageSize)
	if err != nil {
		return nil, catalogErr("list listings", err)
	}

	totalPages := pageCount(total, s.pageSize)
	if page < 1 || page > totalPages {
		page = totalPages
		if page != queried {
			listings, total, err = s.store.ListListings(ctx, filter, s.pageSize, (page-1)*s.pageSize)
			if err != nil {
				return nil, catalogErr("list listings", err)
			}
		}
	}

	locations, err := s.store.ListLocations(ctx)
	if err != nil {
		return nil, catalogErr("list locations", err)
	}

	if listings == nil {
		listings = []model.PropertyListing{}
	}
	return &model.ListingsResponse{
		Results:     listings,
		Locations:   nonNil(locations),
		Total:       total,
		Page:        page,
		PageSize:    s.pageSize,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}, nil
}

// GetBySlug returns a listing with its related listings, feature amenities
// and nearby places
func (s *ListingService) GetBySlug(ctx context.Context, slug string) (*model.ListingDetail, error) {
	listing, err := s.store.GetListingBySlug(ctx, slug)
	if err != nil {
		return nil, catalogErr("get listing", err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	related, err := s.store.ListRelatedListings(ctx, listing)
	if err != nil {
		return nil, catalogErr("list related listings", err)
	}
	amenities, err := s.store.ListListingAmenities(ctx, listing.ID)
	if err != nil {
		return nil, catalogErr("list listing amenities", err)
	}
	places, err := s.store.ListListingNearbyPlaces(ctx, listing.ID)
	if err != nil {
		return nil, catalogErr("list listing nearby places", err)
	}

	return &model.ListingDetail{
		Listing:          *listing,
		Related:          nonNil(related),
		FeatureAmenities: nonNil(amenities),
		NearbyPlaces:     nonNil(places),
	}, nil
}

// CreateInquiry records a contact request against the listing with the given slug
func (s *ListingService) CreateInquiry(ctx context.Context, slug string, req *model.InquiryRequest) (*model.PropertyInquiry, error) {
	listing, err := s.store.GetListingBySlug(ctx, slug)
	if err != nil {
		return nil, catalogErr("get listing", err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	now := time.Now()
	inquiry := &model.PropertyInquiry{
		PropertyID: listing.ID,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    req.Message,
		CreatedAt:  now,
	}
	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, catalogErr("create inquiry", fmt.Errorf("listing %s: %w", slug, err))
	}
	return inquiry, nil
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return page
}

func pageCount(total, size int) int {
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

package service

import (
	"context"
	"errors"
	"fmt"

	"horizonbot/internal/model"
)

// ErrCatalogUnavailable is matched by every error the catalog returns
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogError records the catalog operation that failed
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCatalogUnavailable, e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrCatalogUnavailable on any CatalogError
func (e *CatalogError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

func catalogErr(op string, err error) error {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return err
	}
	return &CatalogError{Op: op, Err: err}
}

// Catalog is the read-only view of the property catalog used by the chatbot
type Catalog interface {
	// FindActiveListings returns listings matching the filter in the filter's order
	FindActiveListings(ctx context.Context, filter model.ListingFilter) ([]model.PropertyListing, error)
	// FindApprovedSellListings returns approved owner listings, optionally
	// restricted to locations whose name contains location
	FindApprovedSellListings(ctx context.Context, kind model.SellKind, location *string, limit int) ([]model.SellListing, error)
	ListFeatureAmenities(ctx context.Context, limit int) ([]model.FeatureAmenity, error)
	ListNearbyPlaces(ctx context.Context, limit int) ([]model.NearbyPlace, error)
	// ListKnownLocations returns location names in catalog order
	ListKnownLocations(ctx context.Context) ([]string, error)
	CountActiveListings(ctx context.Context) (int, error)
	CountLocations(ctx context.Context) (int, error)
	// MeanArea returns the mean area of active listings of the given type;
	// ok is false when there are none
	MeanArea(ctx context.Context, propertyType string) (mean float64, ok bool, err error)
}

// ListingStore backs the browse, detail and inquiry endpoints
type ListingStore interface {
	ListListings(ctx context.Context, filter model.ListingFilter, limit, offset int) ([]model.PropertyListing, int, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	GetListingBySlug(ctx context.Context, slug string) (*model.PropertyListing, error)
	ListRelatedListings(ctx context.Context, listing *model.PropertyListing) ([]model.PropertyListing, error)
	ListListingAmenities(ctx context.Context, listingID int64) ([]model.FeatureAmenity, error)
	ListListingNearbyPlaces(ctx context.Context, listingID int64) ([]model.NearbyPlace, error)
	CreateInquiry(ctx context.Context, inquiry *model.PropertyInquiry) error
}

package service

import (
	"context"
	"sync"

	"horizonbot/internal/model"
)

// fakeCatalog serves fixed records and remembers the filters it was asked for
type fakeCatalog struct {
	mu sync.Mutex

	locations    []string
	listings     []model.PropertyListing
	byLocation   []model.PropertyListing
	residential  []model.SellListing
	commercial   []model.SellListing
	amenities    []model.FeatureAmenity
	places       []model.NearbyPlace
	activeCount  int
	meanArea     float64
	hasMeanArea  bool
	err          error
	locationsErr error

	filters      []model.ListingFilter
	sellLocation *string
}

func (f *fakeCatalog) FindActiveListings(_ context.Context, filter model.ListingFilter) ([]model.PropertyListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	if filter.Order == model.OldestFirst {
		return f.byLocation, nil
	}
	return f.listings, nil
}

func (f *fakeCatalog) FindApprovedSellListings(_ context.Context, kind model.SellKind, location *string, limit int) ([]model.SellListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sellLocation = location
	if f.err != nil {
		return nil, f.err
	}
	if kind == model.SellCommercial {
		return f.commercial, nil
	}
	return f.residential, nil
}

func (f *fakeCatalog) ListFeatureAmenities(_ context.Context, limit int) ([]model.FeatureAmenity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.amenities, nil
}

func (f *fakeCatalog) ListNearbyPlaces(_ context.Context, limit int) ([]model.NearbyPlace, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func (f *fakeCatalog) ListKnownLocations(context.Context) ([]string, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations, nil
}

func (f *fakeCatalog) CountActiveListings(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.activeCount, nil
}

func (f *fakeCatalog) CountLocations(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.locations), nil
}

func (f *fakeCatalog) MeanArea(context.Context, string) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	return f.meanArea, f.hasMeanArea, nil
}

func (f *fakeCatalog) lastFilter() model.ListingFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters[len(f.filters)-1]
}

// fixedRandom always picks the same index
type fixedRandom int

func (r fixedRandom) Intn(n int) int { return int(r) % n }

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

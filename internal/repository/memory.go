package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"horizonbot/internal/model"
)

// MemoryRepository is a catalog held in memory, loaded from a Seed
type MemoryRepository struct {
	mu            sync.RWMutex
	locations     []model.Location
	listings      []model.PropertyListing
	sellListings  []model.SellListing
	amenities     []model.FeatureAmenity
	nearbyPlaces  []model.NearbyPlace
	amenityIDs    map[int64][]int64
	placeIDs      map[int64][]int64
	inquiries     []model.PropertyInquiry
	nextInquiryID int64
	designs       []model.InteriorDesignRequest
}

// NewMemoryRepository creates a new in-memory repository from a seed.
// A nil seed gives an empty catalog.
func NewMemoryRepository(seed *Seed) *MemoryRepository {
	m := &MemoryRepository{
		amenityIDs:    make(map[int64][]int64),
		placeIDs:      make(map[int64][]int64),
		nextInquiryID: 1,
	}
	if seed == nil {
		return m
	}

	m.locations = append([]model.Location(nil), seed.Locations...)
	m.amenities = append([]model.FeatureAmenity(nil), seed.Amenities...)
	m.nearbyPlaces = append([]model.NearbyPlace(nil), seed.NearbyPlaces...)
	m.sellListings = append([]model.SellListing(nil), seed.SellListings...)
	for _, l := range seed.Listings {
		m.listings = append(m.listings, l.PropertyListing)
		m.amenityIDs[l.ID] = l.AmenityIDs
		m.placeIDs[l.ID] = l.NearbyPlaceIDs
	}

	sort.Slice(m.locations, func(i, j int) bool { return m.locations[i].ID < m.locations[j].ID })
	sort.Slice(m.listings, func(i, j int) bool { return m.listings[i].ID < m.listings[j].ID })
	sort.Slice(m.sellListings, func(i, j int) bool { return m.sellListings[i].ID < m.sellListings[j].ID })
	sort.Slice(m.amenities, func(i, j int) bool { return m.amenities[i].ID < m.amenities[j].ID })
	sort.Slice(m.nearbyPlaces, func(i, j int) bool { return m.nearbyPlaces[i].ID < m.nearbyPlaces[j].ID })
	return m
}

// FindActiveListings returns every listing matching the filter
func (m *MemoryRepository) FindActiveListings(_ context.Context, filter model.ListingFilter) ([]model.PropertyListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.matchLocked(filter), nil
}

// ListListings returns one page of matching listings and the total match count
func (m *MemoryRepository) ListListings(_ context.Context, filter model.ListingFilter, limit, offset int) ([]model.PropertyListing, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.matchLocked(filter)
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *MemoryRepository) matchLocked(filter model.ListingFilter) []model.PropertyListing {
	var matched []model.PropertyListing
	for i := range m.listings {
		if matchesFilter(&m.listings[i], filter) {
			matched = append(matched, m.listings[i])
		}
	}
	if filter.Order == model.NewestFirst {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	return matched
}

// matchesFilter mirrors the SQL built by applyListingFilter. NULL columns
// never satisfy a condition on them.
func matchesFilter(l *model.PropertyListing, f model.ListingFilter) bool {
	if f.ActiveOnly && !l.IsActive {
		return false
	}
	if f.PropertyType != nil && l.PropertyType != *f.PropertyType {
		return false
	}
	if f.Category != nil && l.Category != *f.Category {
		return false
	}
	if f.Configuration != nil && (l.Configuration == nil || !strings.EqualFold(*l.Configuration, *f.Configuration)) {
		return false
	}
	if f.CommercialType != nil && (l.CommercialType == nil || *l.CommercialType != *f.CommercialType) {
		return false
	}
	if f.Location != nil && !containsFold(l.LocationName, *f.Location) {
		return false
	}
	if f.LocationID != nil && (l.LocationID == nil || *l.LocationID != *f.LocationID) {
		return false
	}
	if f.Status != nil && (l.Status == nil || *l.Status != *f.Status) {
		return false
	}
	if f.MinBudgetMin != nil {
		v, ok := l.MinBudgetLakhs()
		if !ok || v < *f.MinBudgetMin {
			return false
		}
	}
	if f.MaxBudgetMax != nil {
		v, ok := l.MaxBudgetLakhs()
		if !ok || v > *f.MaxBudgetMax {
			return false
		}
	}
	if f.AreaMin != nil && l.Area < *f.AreaMin {
		return false
	}
	if f.AreaMax != nil && l.Area > *f.AreaMax {
		return false
	}
	if f.Search != "" &&
		!containsFold(l.ProjectName, f.Search) &&
		!containsFold(l.Configuration, f.Search) &&
		!containsFold(l.LocationName, f.Search) {
		return false
	}
	return true
}

func containsFold(s *string, sub string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
}

// GetListingBySlug retrieves a single listing by its slug
func (m *MemoryRepository) GetListingBySlug(_ context.Context, slug string) (*model.PropertyListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.listings {
		if m.listings[i].Slug == slug {
			l := m.listings[i]
			return &l, nil
		}
	}
	return nil, nil
}

// ListRelatedListings returns listings of the same type in the same location
func (m *MemoryRepository) ListRelatedListings(_ context.Context, listing *model.PropertyListing) ([]model.PropertyListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var related []model.PropertyListing
	for _, l := range m.listings {
		if l.Slug == listing.Slug || l.PropertyType != listing.PropertyType {
			continue
		}
		if !sameLocation(l.LocationID, listing.LocationID) {
			continue
		}
		related = append(related, l)
	}
	return related, nil
}

func sameLocation(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ListListingAmenities returns the feature amenities attached to a listing
func (m *MemoryRepository) ListListingAmenities(_ context.Context, listingID int64) ([]model.FeatureAmenity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := toSet(m.amenityIDs[listingID])
	var out []model.FeatureAmenity
	for _, a := range m.amenities {
		if ids[a.ID] {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListListingNearbyPlaces returns the nearby places attached to a listing
func (m *MemoryRepository) ListListingNearbyPlaces(_ context.Context, listingID int64) ([]model.NearbyPlace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := toSet(m.placeIDs[listingID])
	var out []model.NearbyPlace
	for _, p := range m.nearbyPlaces {
		if ids[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// FindApprovedSellListings returns approved owner listings of one kind
func (m *MemoryRepository) FindApprovedSellListings(_ context.Context, kind model.SellKind, location *string, limit int) ([]model.SellListing, error) {
	if kind != model.SellResidential && kind != model.SellCommercial {
		return nil, fmt.Errorf("unknown sell listing kind %q", kind)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.SellListing
	for _, s := range m.sellListings {
		if s.Kind != kind || !s.IsApproved {
			continue
		}
		if location != nil && !containsFold(s.LocationName, *location) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListFeatureAmenities returns up to limit feature amenities
func (m *MemoryRepository) ListFeatureAmenities(_ context.Context, limit int) ([]model.FeatureAmenity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return head(m.amenities, limit), nil
}

// ListNearbyPlaces returns up to limit nearby places
func (m *MemoryRepository) ListNearbyPlaces(_ context.Context, limit int) ([]model.NearbyPlace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return head(m.nearbyPlaces, limit), nil
}

func head[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return append([]T(nil), items...)
}

// ListLocations returns every location ordered by id
func (m *MemoryRepository) ListLocations(_ context.Context) ([]model.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Location(nil), m.locations...), nil
}

// ListKnownLocations returns every location name ordered by id
func (m *MemoryRepository) ListKnownLocations(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.locations))
	for i, loc := range m.locations {
		names[i] = loc.Name
	}
	return names, nil
}

// CountActiveListings counts listings open for purchase
func (m *MemoryRepository) CountActiveListings(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, l := range m.listings {
		if l.IsActive {
			count++
		}
	}
	return count, nil
}

// CountLocations counts known locations
func (m *MemoryRepository) CountLocations(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.locations), nil
}

// MeanArea returns the mean area of active listings of one property type
func (m *MemoryRepository) MeanArea(_ context.Context, propertyType string) (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sum float64
	var n int
	for _, l := range m.listings {
		if l.IsActive && l.PropertyType == propertyType {
			sum += l.Area
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

// CreateInquiry stores an inquiry and fills in its id
func (m *MemoryRepository) CreateInquiry(_ context.Context, inquiry *model.PropertyInquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inquiry.ID = m.nextInquiryID
	m.nextInquiryID++
	m.inquiries = append(m.inquiries, *inquiry)
	return nil
}

// Inquiries returns a copy of the stored inquiries
func (m *MemoryRepository) Inquiries() []model.PropertyInquiry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.PropertyInquiry(nil), m.inquiries...)
}

// CreateSellListing stores an owner listing and fills in its id. Ids are
// shared across both kinds.
func (m *MemoryRepository) CreateSellListing(_ context.Context, listing *model.SellListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var next int64 = 1
	if n := len(m.sellListings); n > 0 {
		next = m.sellListings[n-1].ID + 1
	}
	if listing.LocationID != nil && listing.LocationName == nil {
		for _, l := range m.locations {
			if l.ID == *listing.LocationID {
				name := l.Name
				listing.LocationName = &name
				break
			}
		}
	}
	listing.ID = next
	m.sellListings = append(m.sellListings, *listing)
	return nil
}

// CreateInteriorDesignRequest stores a design request and fills in its id
func (m *MemoryRepository) CreateInteriorDesignRequest(_ context.Context, req *model.InteriorDesignRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	req.ID = int64(len(m.designs) + 1)
	m.designs = append(m.designs, *req)
	return nil
}

// SellListings returns a copy of every stored owner listing, approved or not
func (m *MemoryRepository) SellListings() []model.SellListing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.SellListing(nil), m.sellListings...)
}

// InteriorDesignRequests returns a copy of the stored design requests
func (m *MemoryRepository) InteriorDesignRequests() []model.InteriorDesignRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.InteriorDesignRequest(nil), m.designs...)
}

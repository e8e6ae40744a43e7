package repository

import (
	"context"
	"testing"

	"horizonbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T) *MemoryRepository {
	t.Helper()
	seed, err := LoadSeed(testSeedPath)
	require.NoError(t, err)
	return NewMemoryRepository(seed)
}

func slugs(listings []model.PropertyListing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Slug
	}
	return out
}

func TestMemoryRepository_FindActiveListings(t *testing.T) {
	repo := newTestMemory(t)

	tests := []struct {
		name   string
		filter model.ListingFilter
		want   []string
	}{
		{
			name:   "configuration is case-insensitive and inactive listings are skipped",
			filter: model.ListingFilter{ActiveOnly: true, Configuration: strPtr("2BHK"), Location: strPtr("sg")},
			want:   []string{"skyline-residency"},
		},
		{
			name:   "inactive included without ActiveOnly",
			filter: model.ListingFilter{Configuration: strPtr("2bhk"), Location: strPtr("SG Highway")},
			want:   []string{"old-tower", "skyline-residency"},
		},
		{
			name:   "max budget compares crores in lakhs",
			filter: model.ListingFilter{ActiveOnly: true, MaxBudgetMax: floatPtr(100)},
			want:   []string{"satellite-sky", "bopal-heights", "skyline-residency"},
		},
		{
			name:   "min budget compares crores in lakhs",
			filter: model.ListingFilter{ActiveOnly: true, MinBudgetMin: floatPtr(150)},
			want:   []string{"prahlad-plaza", "green-acres"},
		},
		{
			name:   "area range",
			filter: model.ListingFilter{ActiveOnly: true, AreaMin: floatPtr(1500), AreaMax: floatPtr(2000), Order: model.OldestFirst},
			want:   []string{"bopal-heights", "prahlad-plaza"},
		},
		{
			name:   "status never matches a listing without one",
			filter: model.ListingFilter{ActiveOnly: true, Configuration: strPtr("2bhk"), Status: strPtr("new")},
			want:   []string{"skyline-residency"},
		},
		{
			name:   "commercial type",
			filter: model.ListingFilter{ActiveOnly: true, CommercialType: strPtr("office")},
			want:   []string{"corporate-hub"},
		},
		{
			name:   "search spans project and location names",
			filter: model.ListingFilter{ActiveOnly: true, Search: "bopal", Order: model.OldestFirst},
			want:   []string{"green-acres", "bopal-heights"},
		},
		{
			name:   "no match",
			filter: model.ListingFilter{ActiveOnly: true, Location: strPtr("Thaltej")},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindActiveListings(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slugs(got))
		})
	}
}

func TestMemoryRepository_ListListings(t *testing.T) {
	repo := newTestMemory(t)
	filter := model.ListingFilter{ActiveOnly: true, Order: model.OldestFirst}

	page, total, err := repo.ListListings(context.Background(), filter, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, []string{"skyline-residency", "green-acres", "corporate-hub", "bopal-heights"}, slugs(page))

	page, total, err = repo.ListListings(context.Background(), filter, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, []string{"prahlad-plaza", "satellite-sky"}, slugs(page))

	page, _, err = repo.ListListings(context.Background(), filter, 4, 8)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryRepository_Detail(t *testing.T) {
	repo := newTestMemory(t)
	ctx := context.Background()

	listing, err := repo.GetListingBySlug(ctx, "skyline-residency")
	require.NoError(t, err)
	require.NotNil(t, listing)

	related, err := repo.ListRelatedListings(ctx, listing)
	require.NoError(t, err)
	assert.Equal(t, []string{"old-tower"}, slugs(related))

	amenities, err := repo.ListListingAmenities(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.FeatureAmenity{{ID: 1, Name: "Swimming Pool"}, {ID: 2, Name: "Gymnasium"}}, amenities)

	places, err := repo.ListListingNearbyPlaces(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Metro Station", places[0].Name)

	missing, err := repo.GetListingBySlug(ctx, "nowhere")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepository_FindApprovedSellListings(t *testing.T) {
	repo := newTestMemory(t)
	ctx := context.Background()

	residential, err := repo.FindApprovedSellListings(ctx, model.SellResidential, nil, 3)
	require.NoError(t, err)
	require.Len(t, residential, 1)
	assert.Equal(t, "Shanti Apartments", residential[0].ProjectName)

	commercial, err := repo.FindApprovedSellListings(ctx, model.SellCommercial, strPtr("sg"), 2)
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "Market Square", commercial[0].ProjectName)

	commercial, err = repo.FindApprovedSellListings(ctx, model.SellCommercial, strPtr("Bopal"), 2)
	require.NoError(t, err)
	assert.Empty(t, commercial)

	_, err = repo.FindApprovedSellListings(ctx, model.SellKind("land"), nil, 2)
	assert.Error(t, err)
}

func TestMemoryRepository_Stats(t *testing.T) {
	repo := newTestMemory(t)
	ctx := context.Background()

	active, err := repo.CountActiveListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, active)

	locations, err := repo.CountLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, locations)

	mean, ok, err := repo.MeanArea(ctx, model.PropertyTypeResidential)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1862.5, mean, 0.001)

	_, ok, err = repo.MeanArea(ctx, "land")
	require.NoError(t, err)
	assert.False(t, ok)

	names, err := repo.ListKnownLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"SG Highway", "Bopal", "Prahlad Nagar", "Satellite", "Thaltej"}, names)

	amenities, err := repo.ListFeatureAmenities(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, amenities, 2)
}

func TestMemoryRepository_CreateInquiry(t *testing.T) {
	repo := NewMemoryRepository(nil)

	first := &model.PropertyInquiry{PropertyID: 1, Name: "Asha"}
	second := &model.PropertyInquiry{PropertyID: 2, Name: "Ravi"}
	require.NoError(t, repo.CreateInquiry(context.Background(), first))
	require.NoError(t, repo.CreateInquiry(context.Background(), second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Len(t, repo.Inquiries(), 2)
}

func TestMemoryRepository_CreateSellListing(t *testing.T) {
	repo := newTestMemory(t)
	ctx := context.Background()
	satellite := int64(4)

	listing := &model.SellListing{
		Kind:           model.SellCommercial,
		ProjectName:    "Satellite Arcade",
		CommercialType: strPtr("office"),
		Area:           900,
		Budget:         7500000,
		LocationID:     &satellite,
		ContactEmail:   "owner@example.com",
	}
	require.NoError(t, repo.CreateSellListing(ctx, listing))

	assert.Equal(t, int64(4), listing.ID)
	require.NotNil(t, listing.LocationName)
	assert.Equal(t, "Satellite", *listing.LocationName)
	assert.Len(t, repo.SellListings(), 4)

	approved, err := repo.FindApprovedSellListings(ctx, model.SellCommercial, nil, 5)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "Market Square", approved[0].ProjectName)
}

func TestMemoryRepository_CreateInteriorDesignRequest(t *testing.T) {
	repo := NewMemoryRepository(nil)

	first := &model.InteriorDesignRequest{Name: "Farah", PropertyType: "flat", ServiceType: "turnkey"}
	second := &model.InteriorDesignRequest{Name: "Dev", PropertyType: "bungalow", ServiceType: "consultancy"}
	require.NoError(t, repo.CreateInteriorDesignRequest(context.Background(), first))
	require.NoError(t, repo.CreateInteriorDesignRequest(context.Background(), second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Len(t, repo.InteriorDesignRequests(), 2)
}

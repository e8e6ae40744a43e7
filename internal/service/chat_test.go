package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"horizonbot/internal/logger"
	"horizonbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChat(catalog *fakeCatalog, opts ...ChatOption) *ChatService {
	if catalog.locations == nil {
		catalog.locations = []string{"SG Highway", "Bopal", "Prahlad Nagar"}
	}
	return NewChatService(catalog, NewExtractor(catalog, logger.Discard()), logger.Discard(), opts...)
}

func skylineResidency() model.PropertyListing {
	return model.PropertyListing{
		ID:            1,
		Slug:          "skyline-residency",
		ProjectName:   strPtr("Skyline Residency"),
		PropertyType:  model.PropertyTypeResidential,
		Configuration: strPtr("2bhk"),
		Status:        strPtr("new"),
		Area:          1200,
		MinBudget:     floatPtr(40),
		MinBudgetUnit: model.UnitLakhs,
		MaxBudget:     floatPtr(48),
		MaxBudgetUnit: model.UnitLakhs,
		LocationName:  strPtr("SG Highway"),
		IsActive:      true,
	}
}

func TestChatService_EndToEndSearch(t *testing.T) {
	catalog := &fakeCatalog{listings: []model.PropertyListing{skylineResidency()}}
	chat := newTestChat(catalog)

	resp, err := chat.Reply(context.Background(), "2bhk in sg highway under 50 lakhs")
	require.NoError(t, err)

	assert.Equal(t, model.IntentPropertySearch, resp.Intent)
	assert.Contains(t, resp.Response, "Found 1 properties for you")
	assert.Contains(t, resp.Response, "Skyline Residency")
	assert.Contains(t, resp.Response, "SG Highway")
	assert.Contains(t, resp.Response, "2BHK")
	assert.Contains(t, resp.Response, "40-48 Lakhs")
	assert.Contains(t, resp.Response, `href="/property/skyline-residency/"`)

	filter := catalog.lastFilter()
	assert.True(t, filter.ActiveOnly)
	assert.Equal(t, model.NewestFirst, filter.Order)
	require.NotNil(t, filter.Configuration)
	assert.Equal(t, "2bhk", *filter.Configuration)
	require.NotNil(t, filter.Location)
	assert.Equal(t, "SG Highway", *filter.Location)
	require.NotNil(t, filter.MaxBudgetMax)
	assert.Equal(t, 50.0, *filter.MaxBudgetMax)
	assert.Nil(t, filter.MinBudgetMin)
	assert.Nil(t, filter.Status)
}

func TestChatService_OutOfScope(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	for _, msg := range []string{"tell me a joke", "what is the weather today", "   "} {
		t.Run(msg, func(t *testing.T) {
			resp, err := chat.Reply(context.Background(), msg)
			require.NoError(t, err)
			assert.Equal(t, OutOfScopeResponse, resp.Response)
			assert.Equal(t, model.IntentOutOfScope, resp.Intent)
		})
	}
}

func TestChatService_CannedReplies(t *testing.T) {
	tests := []struct {
		name    string
		message string
		random  int
		want    string
	}{
		{"greeting", "hello", 0, GreetingResponse},
		{"help", "help", 0, HelpResponse},
		{"first farewell", "bye", 0, GoodbyeResponses[0]},
		{"last farewell", "see you", 5, GoodbyeResponses[5]},
		{"friendly", "how are you", 2, FriendlyResponses[2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := newTestChat(&fakeCatalog{}, WithRandom(fixedRandom(tt.random)))
			resp, err := chat.Reply(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Response)
		})
	}
}

func TestChatService_FarewellStaysInSet(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	for i := 0; i < 50; i++ {
		resp, err := chat.Reply(context.Background(), "goodbye")
		require.NoError(t, err)
		assert.Contains(t, GoodbyeResponses, resp.Response)
	}
}

func TestChatService_SocialPrefix(t *testing.T) {
	catalog := &fakeCatalog{listings: []model.PropertyListing{skylineResidency()}}
	chat := newTestChat(catalog, WithRandom(fixedRandom(1)))

	resp, err := chat.Reply(context.Background(), "how are you? show me 2bhk in sg highway")
	require.NoError(t, err)

	assert.Equal(t, model.IntentPropertySearch, resp.Intent)
	assert.True(t, strings.HasPrefix(resp.Response, FriendlyResponses[1]+"\n\n"))
	assert.Contains(t, resp.Response, "Skyline Residency")
}

func TestChatService_ListingOverflow(t *testing.T) {
	var listings []model.PropertyListing
	for i := 0; i < 7; i++ {
		l := skylineResidency()
		l.ID = int64(i + 1)
		listings = append(listings, l)
	}
	chat := newTestChat(&fakeCatalog{listings: listings})

	resp, err := chat.Reply(context.Background(), "2bhk in sg highway")
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "Found 7 properties for you")
	assert.Equal(t, 5, strings.Count(resp.Response, "View Details"))
	assert.Contains(t, resp.Response, "... and 2 more properties available!")
}

func TestChatService_LocationSummary(t *testing.T) {
	inBopal := []model.PropertyListing{
		{ID: 2, Configuration: strPtr("2bhk")},
		{ID: 4, Configuration: strPtr("3bhk")},
		{ID: 5, Configuration: strPtr("2bhk")},
		{ID: 6, CommercialType: strPtr("office")},
	}
	catalog := &fakeCatalog{byLocation: inBopal}
	chat := newTestChat(catalog)

	resp, err := chat.Reply(context.Background(), "properties in bopal")
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "📍 **Properties in Bopal:**")
	assert.Contains(t, resp.Response, "4 properties available for purchase")
	assert.Contains(t, resp.Response, "Popular types: 2bhk, 3bhk")
	assert.NotContains(t, resp.Response, "I couldn't find")

	summaryFilter := catalog.lastFilter()
	assert.Equal(t, model.OldestFirst, summaryFilter.Order)
	require.NotNil(t, summaryFilter.Location)
	assert.Equal(t, "Bopal", *summaryFilter.Location)
}

func TestChatService_LocationWithStatusStillSummarises(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	resp, err := chat.Reply(context.Background(), "new projects in bopal")
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "Properties in Bopal")
	assert.Contains(t, resp.Response, "0 properties available for purchase")
	assert.NotContains(t, resp.Response, "Popular types")
}

func TestChatService_Fallback(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	resp, err := chat.Reply(context.Background(), "3bhk under 20 lakhs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Response, "I couldn't find matching properties. Try: Try specifying a location. "))
	assert.NotContains(t, resp.Response, "Mention property type")
	assert.NotContains(t, resp.Response, "Add budget range")
	assert.Contains(t, resp.Response, "Example queries:")

	resp, err = chat.Reply(context.Background(), "2bhk in sg highway under 10 lakhs")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find matching properties. "+fallbackExamples, resp.Response)
}

func TestChatService_CatalogError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name    string
		message string
		op      string
	}{
		{"search", "2bhk in sg highway", "find active listings"},
		{"amenities", "show amenities", "list feature amenities"},
		{"market", "market trends", "count active listings"},
		{"sale", "flats for sale", "find residential sell listings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := newTestChat(&fakeCatalog{err: boom})

			resp, err := chat.Reply(context.Background(), tt.message)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, ErrCatalogUnavailable))
			assert.True(t, errors.Is(err, boom))

			var catalogErr *CatalogError
			require.True(t, errors.As(err, &catalogErr))
			assert.Equal(t, tt.op, catalogErr.Op)
		})
	}
}

func TestChatService_LocationLookupFailure(t *testing.T) {
	chat := newTestChat(&fakeCatalog{locationsErr: errors.New("connection reset")})

	resp, err := chat.Reply(context.Background(), "anything in sg highway")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestChatService_Amenities(t *testing.T) {
	catalog := &fakeCatalog{
		amenities: []model.FeatureAmenity{{ID: 1, Name: "Swimming Pool"}, {ID: 2, Name: "Gymnasium"}},
		places:    []model.NearbyPlace{{ID: 1, Name: "Metro Station", DistanceValue: 1.5, DistanceUnit: "km"}},
	}
	chat := newTestChat(catalog)

	resp, err := chat.Reply(context.Background(), "what amenities do you have")
	require.NoError(t, err)

	assert.Equal(t, model.IntentAmenityInfo, resp.Intent)
	assert.Contains(t, resp.Response, "• Swimming Pool<br><br>")
	assert.Contains(t, resp.Response, "• Gymnasium<br><br>")
	assert.Contains(t, resp.Response, "• Metro Station (1.5 km)<br><br>")
}

func TestChatService_MarketInsights(t *testing.T) {
	catalog := &fakeCatalog{
		locations:   []string{"SG Highway", "Bopal", "Prahlad Nagar"},
		activeCount: 12,
		meanArea:    1456.7,
		hasMeanArea: true,
	}
	chat := newTestChat(catalog)

	resp, err := chat.Reply(context.Background(), "market trends")
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "• Total Active Properties: 12")
	assert.Contains(t, resp.Response, "• Locations Covered: 3")
	assert.Contains(t, resp.Response, "• Average Property Size: 1457 sq ft")
	assert.Contains(t, resp.Response, "**Investment Tips:**")

	catalog.hasMeanArea = false
	resp, err = chat.Reply(context.Background(), "market trends")
	require.NoError(t, err)
	assert.NotContains(t, resp.Response, "Average Property Size")
}

func TestChatService_SellListings(t *testing.T) {
	catalog := &fakeCatalog{
		residential: []model.SellListing{{
			ID: 1, Kind: model.SellResidential, ProjectName: "Shanti Apartments",
			Configuration: strPtr("2bhk"), Area: 1050, Budget: 4500000,
			LocationName: strPtr("Bopal"), ContactName: strPtr("Ramesh Patel"), ContactNumber: strPtr("9876543210"),
		}},
		commercial: []model.SellListing{{
			ID: 3, Kind: model.SellCommercial, ProjectName: "Market Square",
			CommercialType: strPtr("corporate_floors"), Area: 400, Budget: 2500000,
		}},
	}
	chat := newTestChat(catalog)

	resp, err := chat.Reply(context.Background(), "properties for sale in bopal")
	require.NoError(t, err)

	assert.Equal(t, model.IntentSellIntent, resp.Intent)
	require.NotNil(t, catalog.sellLocation)
	assert.Equal(t, "Bopal", *catalog.sellLocation)
	assert.Contains(t, resp.Response, "Found 2 properties for sale:")
	assert.Contains(t, resp.Response, "🏠 **Shanti Apartments** (Residential)")
	assert.Contains(t, resp.Response, "🏗️ Type: 2BHK")
	assert.Contains(t, resp.Response, "💰 Budget: ₹4,500,000")
	assert.Contains(t, resp.Response, "🏢 **Market Square** (Commercial)")
	assert.Contains(t, resp.Response, "🏗️ Type: Corporate Floors")
	assert.Contains(t, resp.Response, "👤 Contact: N/A")
}

func TestChatService_NoSellListings(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	resp, err := chat.Reply(context.Background(), "i want to sell my flat")
	require.NoError(t, err)
	assert.Equal(t, noSellListingsResponse, resp.Response)
}

func TestChatService_InteriorDesign(t *testing.T) {
	chat := newTestChat(&fakeCatalog{})

	resp, err := chat.Reply(context.Background(), "interior design for my 3bhk")
	require.NoError(t, err)
	assert.Equal(t, interiorDesignResponse, resp.Response)
}

func TestChatService_Idempotent(t *testing.T) {
	catalog := &fakeCatalog{listings: []model.PropertyListing{skylineResidency()}}
	chat := newTestChat(catalog)

	first, err := chat.Reply(context.Background(), "2bhk in sg highway under 50 lakhs")
	require.NoError(t, err)
	second, err := chat.Reply(context.Background(), "2bhk in sg highway under 50 lakhs")
	require.NoError(t, err)

	assert.Equal(t, first.Response, second.Response)
}

func TestBuildSearchFilter(t *testing.T) {
	tests := []struct {
		name      string
		q         model.ExtractedQuery
		minBudget *float64
		maxBudget *float64
		areaMin   *float64
		areaMax   *float64
	}{
		{
			name:      "single budget is an upper bound",
			q:         model.ExtractedQuery{BudgetValues: []float64{50}},
			maxBudget: floatPtr(50),
		},
		{
			name:      "single budget above is a lower bound",
			q:         model.ExtractedQuery{BudgetValues: []float64{200}, Signals: model.IntentSignals{Above: true}},
			minBudget: floatPtr(200),
		},
		{
			name:      "two budgets bound both ends",
			q:         model.ExtractedQuery{BudgetValues: []float64{80, 30}},
			minBudget: floatPtr(30),
			maxBudget: floatPtr(80),
		},
		{
			name: "three budgets are ignored",
			q:    model.ExtractedQuery{BudgetValues: []float64{30, 50, 80}},
		},
		{
			name:    "single area is an upper bound",
			q:       model.ExtractedQuery{AreaValues: []float64{1200}},
			areaMax: floatPtr(1200),
		},
		{
			name:    "single area over is a lower bound",
			q:       model.ExtractedQuery{AreaValues: []float64{1200}, Signals: model.IntentSignals{Above: true}},
			areaMin: floatPtr(1200),
		},
		{
			name: "two areas are ignored",
			q:    model.ExtractedQuery{AreaValues: []float64{1000, 1500}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := BuildSearchFilter(&tt.q)
			assert.True(t, filter.ActiveOnly)
			assert.Equal(t, model.NewestFirst, filter.Order)
			assert.Equal(t, tt.minBudget, filter.MinBudgetMin)
			assert.Equal(t, tt.maxBudget, filter.MaxBudgetMax)
			assert.Equal(t, tt.areaMin, filter.AreaMin)
			assert.Equal(t, tt.areaMax, filter.AreaMax)
		})
	}
}

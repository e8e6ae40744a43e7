package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"horizonbot/internal/model"
)

// RandomSource picks canned replies. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// lockedRand serialises access to a *rand.Rand shared between requests
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// ChatLimits bounds how many records each reply shows
type ChatLimits struct {
	MaxListings     int
	SellResidential int
	SellCommercial  int
	Amenities       int
	NearbyPlaces    int
	LocationTypes   int
}

// DefaultChatLimits returns the standard reply bounds
func DefaultChatLimits() ChatLimits {
	return ChatLimits{
		MaxListings:     5,
		SellResidential: 3,
		SellCommercial:  2,
		Amenities:       10,
		NearbyPlaces:    10,
		LocationTypes:   5,
	}
}

type replyFunc func(ctx context.Context, q *model.ExtractedQuery) (string, error)

// ChatService composes chatbot replies from extracted queries and the catalog
type ChatService struct {
	catalog   Catalog
	extractor *Extractor
	limits    ChatLimits
	random    RandomSource
	logger    *slog.Logger
	handlers  map[model.Intent]replyFunc
}

// ChatOption configures a ChatService
type ChatOption func(*ChatService)

// WithRandom replaces the random source used for canned replies
func WithRandom(r RandomSource) ChatOption {
	return func(s *ChatService) {
		s.random = r
	}
}

// WithLimits replaces the reply bounds
func WithLimits(l ChatLimits) ChatOption {
	return func(s *ChatService) {
		s.limits = l
	}
}

// NewChatService creates a new chat service
func NewChatService(catalog Catalog, extractor *Extractor, logger *slog.Logger, opts ...ChatOption) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ChatService{
		catalog:   catalog,
		extractor: extractor,
		limits:    DefaultChatLimits(),
		random:    &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.handlers = map[model.Intent]replyFunc{
		model.IntentOutOfScope:     s.fixed(OutOfScopeResponse),
		model.IntentFarewell:       s.pick(GoodbyeResponses),
		model.IntentSocial:         s.pick(FriendlyResponses),
		model.IntentGreeting:       s.fixed(GreetingResponse),
		model.IntentHelp:           s.fixed(HelpResponse),
		model.IntentInteriorDesign: s.withPrefix(s.fixed(interiorDesignResponse)),
		model.IntentAmenityInfo:    s.withPrefix(s.amenityReply),
		model.IntentMarketInsight:  s.withPrefix(s.marketReply),
		model.IntentSellIntent:     s.withPrefix(s.sellReply),
		model.IntentPropertySearch: s.withPrefix(s.searchReply),
	}
	return s
}

// Reply answers one chat message
func (s *ChatService) Reply(ctx context.Context, message string) (*model.ChatResponse, error) {
	startTime := time.Now()

	q, err := s.extractor.Extract(ctx, message)
	if err != nil {
		s.logger.Error("chat extraction failed", "error", err)
		return nil, err
	}
	text, err := s.Respond(ctx, q)
	if err != nil {
		s.logger.Error("chat reply failed", "intent", q.Intent, "error", err)
		return nil, err
	}

	took := time.Since(startTime).Milliseconds()
	s.logger.Debug("chat reply", "intent", q.Intent, "location", q.LocationName, "took_ms", took)

	return &model.ChatResponse{
		Response: text,
		Intent:   q.Intent,
		Took:     took,
	}, nil
}

// Respond renders the reply for an already extracted query
func (s *ChatService) Respond(ctx context.Context, q *model.ExtractedQuery) (string, error) {
	handler, ok := s.handlers[q.Intent]
	if !ok {
		handler = s.handlers[model.IntentPropertySearch]
	}
	return handler(ctx, q)
}

func (s *ChatService) fixed(text string) replyFunc {
	return func(context.Context, *model.ExtractedQuery) (string, error) {
		return text, nil
	}
}

func (s *ChatService) pick(choices []string) replyFunc {
	return func(context.Context, *model.ExtractedQuery) (string, error) {
		return choices[s.random.Intn(len(choices))], nil
	}
}

// withPrefix prepends a friendly line when social chatter came with a search
func (s *ChatService) withPrefix(next replyFunc) replyFunc {
	return func(ctx context.Context, q *model.ExtractedQuery) (string, error) {
		body, err := next(ctx, q)
		if err != nil {
			return "", err
		}
		if q.Signals.Social {
			return FriendlyResponses[s.random.Intn(len(FriendlyResponses))] + "\n\n" + body, nil
		}
		return body, nil
	}
}

func (s *ChatService) amenityReply(ctx context.Context, _ *model.ExtractedQuery) (string, error) {
	amenities, err := s.catalog.ListFeatureAmenities(ctx, s.limits.Amenities)
	if err != nil {
		return "", catalogErr("list feature amenities", err)
	}
	places, err := s.catalog.ListNearbyPlaces(ctx, s.limits.NearbyPlaces)
	if err != nil {
		return "", catalogErr("list nearby places", err)
	}
	return FormatAmenities(amenities, places), nil
}

func (s *ChatService) marketReply(ctx context.Context, _ *model.ExtractedQuery) (string, error) {
	active, err := s.catalog.CountActiveListings(ctx)
	if err != nil {
		return "", catalogErr("count active listings", err)
	}
	locations, err := s.catalog.CountLocations(ctx)
	if err != nil {
		return "", catalogErr("count locations", err)
	}
	mean, ok, err := s.catalog.MeanArea(ctx, model.PropertyTypeResidential)
	if err != nil {
		return "", catalogErr("mean area", err)
	}
	return FormatMarketInsights(active, locations, mean, ok), nil
}

func (s *ChatService) sellReply(ctx context.Context, q *model.ExtractedQuery) (string, error) {
	residential, err := s.catalog.FindApprovedSellListings(ctx, model.SellResidential, q.LocationName, s.limits.SellResidential)
	if err != nil {
		return "", catalogErr("find residential sell listings", err)
	}
	commercial, err := s.catalog.FindApprovedSellListings(ctx, model.SellCommercial, q.LocationName, s.limits.SellCommercial)
	if err != nil {
		return "", catalogErr("find commercial sell listings", err)
	}
	return FormatSellListings(truncate(residential, s.limits.SellResidential), truncate(commercial, s.limits.SellCommercial)), nil
}

func (s *ChatService) searchReply(ctx context.Context, q *model.ExtractedQuery) (string, error) {
	listings, err := s.catalog.FindActiveListings(ctx, BuildSearchFilter(q))
	if err != nil {
		return "", catalogErr("find active listings", err)
	}
	if len(listings) > 0 {
		return FormatListings(listings, s.limits.MaxListings), nil
	}

	if q.LocationName != nil && !q.HasListingCriteria() {
		return s.locationSummary(ctx, *q.LocationName)
	}
	return FormatSearchFallback(q), nil
}

func (s *ChatService) locationSummary(ctx context.Context, location string) (string, error) {
	listings, err := s.catalog.FindActiveListings(ctx, model.ListingFilter{
		ActiveOnly: true,
		Location:   &location,
		Order:      model.OldestFirst,
	})
	if err != nil {
		return "", catalogErr("find listings in location", err)
	}

	seen := make(map[string]bool)
	var configurations []string
	for _, l := range listings {
		if l.Configuration == nil || *l.Configuration == "" || seen[*l.Configuration] {
			continue
		}
		seen[*l.Configuration] = true
		configurations = append(configurations, *l.Configuration)
	}
	return FormatLocationSummary(location, len(listings), truncate(configurations, s.limits.LocationTypes)), nil
}

// BuildSearchFilter turns the extracted entities into a catalog filter.
//
// A single budget is an upper bound on max_budget, or a lower bound on
// min_budget when the message says "above" or "over". Two budgets bound both
// ends: min_budget >= lower AND max_budget <= upper. Area takes a single value
// with the same above/over rule.
func BuildSearchFilter(q *model.ExtractedQuery) model.ListingFilter {
	filter := model.ListingFilter{
		ActiveOnly:     true,
		Configuration:  q.Configuration,
		CommercialType: q.CommercialType,
		Location:       q.LocationName,
		Status:         q.Status,
		Order:          model.NewestFirst,
	}

	switch len(q.BudgetValues) {
	case 1:
		v := q.BudgetValues[0]
		if q.Signals.Above {
			filter.MinBudgetMin = &v
		} else {
			filter.MaxBudgetMax = &v
		}
	case 2:
		lo, hi := q.BudgetValues[0], q.BudgetValues[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		filter.MinBudgetMin = &lo
		filter.MaxBudgetMax = &hi
	}

	if len(q.AreaValues) == 1 {
		v := q.AreaValues[0]
		if q.Signals.Above {
			filter.AreaMin = &v
		} else {
			filter.AreaMax = &v
		}
	}
	return filter
}

func truncate[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

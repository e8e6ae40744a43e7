package service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"horizonbot/internal/model"
	"horizonbot/internal/utils"
)

var (
	budgetPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(lakhs?|crores?)`)

	// Tried in order; the first pattern with any match wins
	areaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:sq\s*ft|sqft|square\s*feet)`),
		regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:sq\s*yards|sqyards|square\s*yards)`),
	}
)

// LocationSource lists the location names known to the catalog
type LocationSource interface {
	ListKnownLocations(ctx context.Context) ([]string, error)
}

// Extractor classifies a chat message and pulls structured search entities
// out of it using fixed keyword lists and patterns
type Extractor struct {
	locations LocationSource
	logger    *slog.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(locations LocationSource, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		locations: locations,
		logger:    logger,
	}
}

// Extract classifies text and extracts its entities. Anything that cannot be
// found is left empty; the only error is a failed location lookup.
func (e *Extractor) Extract(ctx context.Context, text string) (*model.ExtractedQuery, error) {
	known, err := e.knownLocations(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(strings.TrimSpace(text))
	q := &model.ExtractedQuery{Text: text}

	signals := model.IntentSignals{
		Greeting: utils.ContainsAnyWord(lower, greetingKeywords),
		Help:     utils.ContainsAnyWord(lower, helpKeywords),
		Social:   utils.ContainsAny(lower, friendlyKeywords),
		Farewell: utils.ContainsAny(lower, goodbyeKeywords),
	}
	budgets := ExtractBudgetValues(lower)
	areas := ExtractAreaValues(lower)
	location := MatchLocation(lower, known)
	configuration, hasConfiguration := utils.FirstContained(lower, residentialTokens)
	commercial, hasCommercial := utils.FirstContained(lower, commercialTokens)
	status, hasStatus := matchStatus(lower)

	inScope := signals.Greeting || signals.Help || signals.Social || signals.Farewell ||
		utils.ContainsAny(lower, propertyKeywords) ||
		hasConfiguration || hasCommercial || hasStatus ||
		len(budgets) > 0 || len(areas) > 0 ||
		location != nil
	if !inScope {
		q.Intent = model.IntentOutOfScope
		return q, nil
	}

	q.InScope = true
	q.BudgetValues = budgets
	q.AreaValues = areas
	q.LocationName = location
	if hasConfiguration {
		q.Configuration = &configuration
	}
	if hasCommercial {
		normalized := utils.NormalizeCommercialType(commercial)
		q.CommercialType = &normalized
	}
	if hasStatus {
		q.Status = &status
	}

	signals.Interior = utils.ContainsAny(lower, interiorKeywords)
	signals.Amenity = utils.ContainsAny(lower, amenityKeywords)
	signals.Market = utils.ContainsAny(lower, insightKeywords)
	signals.Sale = utils.ContainsAny(lower, saleKeywords)
	signals.Above = utils.ContainsAny(lower, aboveKeywords)
	q.Signals = signals

	q.Intent = Classify(q)
	return q, nil
}

func (e *Extractor) knownLocations(ctx context.Context) ([]string, error) {
	if e.locations == nil {
		return nil, nil
	}
	names, err := e.locations.ListKnownLocations(ctx)
	if err != nil {
		e.logger.Warn("location lookup failed", "error", err)
		return nil, catalogErr("list known locations", err)
	}
	return names, nil
}

// matchStatus returns the first status token, in list order, that appears
// in text as one of its whole-word forms
func matchStatus(text string) (string, bool) {
	for _, token := range statusTokens {
		if utils.ContainsAnyWord(text, statusForms[token]) {
			return token, true
		}
	}
	return "", false
}

// intentRule pairs an intent with the predicate that selects it
type intentRule struct {
	intent model.Intent
	match  func(q *model.ExtractedQuery) bool
}

// intentRules is evaluated top to bottom; the first match wins
var intentRules = []intentRule{
	{model.IntentFarewell, func(q *model.ExtractedQuery) bool { return q.Signals.Farewell }},
	{model.IntentSocial, func(q *model.ExtractedQuery) bool { return q.Signals.Social && !q.HasSearchSignal() }},
	{model.IntentGreeting, func(q *model.ExtractedQuery) bool { return q.Signals.Greeting && !q.HasSearchSignal() }},
	{model.IntentHelp, func(q *model.ExtractedQuery) bool { return q.Signals.Help }},
	{model.IntentInteriorDesign, func(q *model.ExtractedQuery) bool { return q.Signals.Interior }},
	{model.IntentAmenityInfo, func(q *model.ExtractedQuery) bool { return q.Signals.Amenity }},
	{model.IntentMarketInsight, func(q *model.ExtractedQuery) bool { return q.Signals.Market }},
	{model.IntentSellIntent, func(q *model.ExtractedQuery) bool { return q.Signals.Sale }},
}

// Classify picks the intent that answers an in-scope query
func Classify(q *model.ExtractedQuery) model.Intent {
	if !q.InScope {
		return model.IntentOutOfScope
	}
	for _, rule := range intentRules {
		if rule.match(q) {
			return rule.intent
		}
	}
	return model.IntentPropertySearch
}

// ExtractBudgetValues returns every budget figure in text, in lakhs, in the
// order they appear
func ExtractBudgetValues(text string) []float64 {
	matches := budgetPattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	var budgets []float64
	for _, m := range matches {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(m[2], "crore") {
			amount *= 100
		}
		budgets = append(budgets, amount)
	}
	return budgets
}

// ExtractAreaValues returns the area figures in text. Square feet are tried
// first; square yards are only read when no square-feet figure is present.
func ExtractAreaValues(text string) []float64 {
	lower := strings.ToLower(text)
	for _, pattern := range areaPatterns {
		matches := pattern.FindAllStringSubmatch(lower, -1)
		if len(matches) == 0 {
			continue
		}
		areas := make([]float64, 0, len(matches))
		for _, m := range matches {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				areas = append(areas, v)
			}
		}
		return areas
	}
	return nil
}

// MatchLocation returns the first known location whose name occurs in text
func MatchLocation(text string, locations []string) *string {
	lower := strings.ToLower(text)
	for _, name := range locations {
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			found := name
			return &found
		}
	}
	return nil
}

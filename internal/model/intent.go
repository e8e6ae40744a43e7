package model

// Intent is the classification assigned to a chat message
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentFarewell       Intent = "farewell"
	IntentSocial         Intent = "social"
	IntentInteriorDesign Intent = "interior-design"
	IntentAmenityInfo    Intent = "amenity-info"
	IntentMarketInsight  Intent = "market-insight"
	IntentSellIntent     Intent = "sell-intent"
	IntentPropertySearch Intent = "property-search"
	IntentHelp           Intent = "help"
	IntentOutOfScope     Intent = "out-of-scope"
)

// IntentSignals records which keyword categories matched. Categories are
// detected independently; more than one may be set for the same message.
type IntentSignals struct {
	Greeting bool `json:"greeting"`
	Help     bool `json:"help"`
	Social   bool `json:"social"`
	Farewell bool `json:"farewell"`
	Interior bool `json:"interior"`
	Amenity  bool `json:"amenity"`
	Market   bool `json:"market"`
	Sale     bool `json:"sale"`
	// Above is set when the message asks for values above/over a figure
	Above bool `json:"above"`
}

// ExtractedQuery is the structured form of one chat message. It lives for a
// single request and is never persisted.
type ExtractedQuery struct {
	Text           string        `json:"-"`
	Intent         Intent        `json:"intent"`
	InScope        bool          `json:"in_scope"`
	Signals        IntentSignals `json:"signals"`
	Configuration  *string       `json:"configuration,omitempty"`
	CommercialType *string       `json:"commercial_type,omitempty"`
	Status         *string       `json:"status,omitempty"`
	LocationName   *string       `json:"location,omitempty"`
	BudgetValues   []float64     `json:"budget_values,omitempty"` // lakhs, scan order
	AreaValues     []float64     `json:"area_values,omitempty"`   // raw, scan order
}

// HasSearchSignal reports whether the message carries anything that points at
// a property search: a unit or commercial type, a status, a budget or area
// figure, an explicit sale keyword, or a known location.
func (q *ExtractedQuery) HasSearchSignal() bool {
	return q.Configuration != nil ||
		q.CommercialType != nil ||
		q.Status != nil ||
		len(q.BudgetValues) > 0 ||
		len(q.AreaValues) > 0 ||
		q.Signals.Sale ||
		q.LocationName != nil
}

// HasListingCriteria reports whether anything besides a location narrows the
// listing search.
func (q *ExtractedQuery) HasListingCriteria() bool {
	return q.Configuration != nil ||
		q.CommercialType != nil ||
		len(q.BudgetValues) > 0 ||
		len(q.AreaValues) > 0
}

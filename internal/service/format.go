package service

import (
	"fmt"
	"strings"

	"horizonbot/internal/model"
	"horizonbot/internal/utils"
)

const (
	notSpecified = "Not specified"
	notAvailable = "N/A"
)

// FormatListings renders up to max listings, followed by a count of the rest
func FormatListings(listings []model.PropertyListing, max int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d properties for you:<br><br>", len(listings))

	for i := range listings {
		if i >= max {
			break
		}
		p := &listings[i]
		fmt.Fprintf(&b, "🏠 **%s**<br><br>", utils.StringOr(p.ProjectName, notAvailable))
		fmt.Fprintf(&b, "📍 Location: %s<br><br>", utils.StringOr(p.LocationName, notAvailable))
		fmt.Fprintf(&b, "🏗️ Type: %s<br><br>", listingType(p))
		fmt.Fprintf(&b, "📐 Area: %s sq ft<br><br>", utils.FormatNumber(p.Area))
		fmt.Fprintf(&b, "💰 Budget: %s<br><br>", FormatBudgetRange(p))
		fmt.Fprintf(&b, "📅 Status: %s<br><br>", titleOr(p.Status, notSpecified))
		fmt.Fprintf(&b, `🔗 <a href="%s" target="_blank" class="property-link">View Details</a><br><br>`, ListingURL(p.Slug))
		b.WriteString("<br>")
	}
	if len(listings) > max {
		fmt.Fprintf(&b, "... and %d more properties available!<br><br>", len(listings)-max)
	}
	return strings.TrimSpace(b.String())
}

// ListingURL is the detail page link for a listing
func ListingURL(slug string) string {
	return fmt.Sprintf("/property/%s/", slug)
}

// FormatBudgetRange renders a listing budget such as "₹40-48 Lakhs". When the
// two ends use different units both are shown in lakhs.
func FormatBudgetRange(p *model.PropertyListing) string {
	switch {
	case p.MinBudget != nil && p.MaxBudget != nil:
		if unitOf(p.MinBudgetUnit) == unitOf(p.MaxBudgetUnit) {
			return fmt.Sprintf("₹%s-%s %s", utils.FormatNumber(*p.MinBudget), utils.FormatNumber(*p.MaxBudget), utils.Title(unitOf(p.MinBudgetUnit)))
		}
		lo, _ := p.MinBudgetLakhs()
		hi, _ := p.MaxBudgetLakhs()
		return fmt.Sprintf("₹%s-%s %s", utils.FormatNumber(lo), utils.FormatNumber(hi), utils.Title(model.UnitLakhs))
	case p.MinBudget != nil:
		return fmt.Sprintf("₹%s %s", utils.FormatNumber(*p.MinBudget), utils.Title(unitOf(p.MinBudgetUnit)))
	case p.MaxBudget != nil:
		return fmt.Sprintf("₹%s %s", utils.FormatNumber(*p.MaxBudget), utils.Title(unitOf(p.MaxBudgetUnit)))
	}
	return notAvailable
}

// FormatSellListings renders approved owner listings, residential first
func FormatSellListings(residential, commercial []model.SellListing) string {
	total := len(residential) + len(commercial)
	if total == 0 {
		return noSellListingsResponse
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d properties for sale:<br><br>", total)
	for i := range residential {
		p := &residential[i]
		fmt.Fprintf(&b, "🏠 **%s** (Residential)<br><br>", p.ProjectName)
		writeSellFields(&b, p, strings.ToUpper(utils.StringOr(p.Configuration, notSpecified)))
	}
	for i := range commercial {
		p := &commercial[i]
		fmt.Fprintf(&b, "🏢 **%s** (Commercial)<br><br>", p.ProjectName)
		writeSellFields(&b, p, titleOr(p.CommercialType, notSpecified))
	}
	return strings.TrimSpace(b.String())
}

func writeSellFields(b *strings.Builder, p *model.SellListing, kind string) {
	fmt.Fprintf(b, "📍 Location: %s<br><br>", utils.StringOr(p.LocationName, notAvailable))
	fmt.Fprintf(b, "🏗️ Type: %s<br><br>", kind)
	fmt.Fprintf(b, "📐 Area: %s sq ft<br><br>", utils.FormatNumber(p.Area))
	fmt.Fprintf(b, "💰 Budget: ₹%s<br><br>", utils.GroupThousands(p.Budget))
	fmt.Fprintf(b, "👤 Contact: %s<br><br>", utils.StringOr(p.ContactName, notAvailable))
	fmt.Fprintf(b, "📞 Phone: %s<br><br>", utils.StringOr(p.ContactNumber, notAvailable))
}

// FormatLocationSummary renders the listing count and unit types for a location
func FormatLocationSummary(location string, count int, configurations []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📍 **Properties in %s:**<br><br>", location)
	fmt.Fprintf(&b, "• %d properties available for purchase<br><br>", count)
	if len(configurations) > 0 {
		fmt.Fprintf(&b, "• Popular types: %s<br><br>", strings.Join(configurations, ", "))
	}
	return b.String()
}

// FormatAmenities renders the amenity overview
func FormatAmenities(amenities []model.FeatureAmenity, places []model.NearbyPlace) string {
	var b strings.Builder
	b.WriteString("🏗️ **Available Amenities:**<br><br>")
	if len(amenities) > 0 {
		b.WriteString("**Property Features:**<br><br>")
		for _, a := range amenities {
			fmt.Fprintf(&b, "• %s<br><br>", a.Name)
		}
		b.WriteString("<br><br>")
	}
	if len(places) > 0 {
		b.WriteString("**Nearby Places:**<br><br>")
		for _, p := range places {
			fmt.Fprintf(&b, "• %s (%s %s)<br><br>", p.Name, utils.FormatNumber(p.DistanceValue), p.DistanceUnit)
		}
	}
	return b.String()
}

// FormatMarketInsights renders catalog statistics and investment tips
func FormatMarketInsights(activeCount, locationCount int, meanArea float64, hasMean bool) string {
	var b strings.Builder
	b.WriteString("📊 **Market Insights:**<br><br>")
	fmt.Fprintf(&b, "• Total Active Properties: %d<br><br>", activeCount)
	fmt.Fprintf(&b, "• Locations Covered: %d<br><br>", locationCount)
	if hasMean && meanArea > 0 {
		fmt.Fprintf(&b, "• Average Property Size: %.0f sq ft<br><br>", meanArea)
	}
	b.WriteString(investmentTips)
	return b.String()
}

// FormatSearchFallback explains which search details were missing
func FormatSearchFallback(q *model.ExtractedQuery) string {
	var suggestions []string
	if q.LocationName == nil {
		suggestions = append(suggestions, "Try specifying a location")
	}
	if q.Configuration == nil && q.CommercialType == nil {
		suggestions = append(suggestions, "Mention property type (2BHK, villa, office, etc.)")
	}
	if len(q.BudgetValues) == 0 {
		suggestions = append(suggestions, "Add budget range (e.g., 'under 50 lakhs')")
	}

	response := "I couldn't find matching properties. "
	if len(suggestions) > 0 {
		response += "Try: " + strings.Join(suggestions, ", ") + ". "
	}
	return response + fallbackExamples
}

func listingType(p *model.PropertyListing) string {
	if p.Configuration != nil && *p.Configuration != "" {
		return strings.ToUpper(*p.Configuration)
	}
	return utils.StringOr(p.CommercialType, notSpecified)
}

func titleOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return utils.Title(*s)
}

func unitOf(unit string) string {
	if unit == "" {
		return model.UnitLakhs
	}
	return strings.ToLower(unit)
}

package repository

import (
	"fmt"
	"os"

	"horizonbot/internal/model"

	"gopkg.in/yaml.v3"
)

// Seed is a catalog snapshot loaded from YAML
type Seed struct {
	Locations    []model.Location       `yaml:"locations"`
	Amenities    []model.FeatureAmenity `yaml:"feature_amenities"`
	NearbyPlaces []model.NearbyPlace    `yaml:"nearby_places"`
	Listings     []SeedListing          `yaml:"listings"`
	SellListings []model.SellListing    `yaml:"sell_listings"`
}

// SeedListing is a listing plus the ids of its amenities and nearby places
type SeedListing struct {
	model.PropertyListing `yaml:",inline"`
	AmenityIDs            []int64 `yaml:"amenity_ids"`
	NearbyPlaceIDs        []int64 `yaml:"nearby_place_ids"`
}

// LoadSeed reads a catalog snapshot from a YAML file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a catalog snapshot and resolves listing locations
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := seed.resolve(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) resolve() error {
	names := make(map[int64]string, len(s.Locations))
	for _, loc := range s.Locations {
		names[loc.ID] = loc.Name
	}

	slugs := make(map[string]bool, len(s.Listings))
	for i := range s.Listings {
		l := &s.Listings[i].PropertyListing
		if l.Slug == "" {
			return fmt.Errorf("listing %d: missing slug", l.ID)
		}
		if slugs[l.Slug] {
			return fmt.Errorf("listing %d: duplicate slug %q", l.ID, l.Slug)
		}
		slugs[l.Slug] = true

		if l.MinBudget != nil && l.MinBudgetUnit == "" {
			l.MinBudgetUnit = model.UnitLakhs
		}
		if l.MaxBudget != nil && l.MaxBudgetUnit == "" {
			l.MaxBudgetUnit = model.UnitLakhs
		}
		if l.LocationID == nil {
			continue
		}
		name, ok := names[*l.LocationID]
		if !ok {
			return fmt.Errorf("listing %d: unknown location id %d", l.ID, *l.LocationID)
		}
		l.LocationName = &name
	}

	for i := range s.SellListings {
		if s.SellListings[i].Kind == "" {
			s.SellListings[i].Kind = model.SellResidential
		}
	}
	return nil
}

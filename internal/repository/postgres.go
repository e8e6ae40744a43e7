package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"horizonbot/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const listingColumns = `
			bp.id, bp.slug, bp.project_name, bp.property_type, bp.category,
			bp.configuration, bp.commercial_type, bp.status, bp.furnishing, bp.area,
			bp.min_budget, bp.min_budget_unit, bp.max_budget, bp.max_budget_unit,
			bp.location_id, pl.name AS location_name, bp.is_property_active, bp.created_at`

const listingFrom = `
		FROM buy_properties bp
		LEFT JOIN property_locations pl ON pl.id = bp.location_id`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection pool
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// FindActiveListings returns every listing matching the filter
func (r *PostgresRepository) FindActiveListings(ctx context.Context, filter model.ListingFilter) ([]model.PropertyListing, error) {
	qb := applyListingFilter(filter)
	query := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY %s", listingColumns, listingFrom, qb.where(), orderClause(filter.Order))

	var listings []model.PropertyListing
	if err := r.db.SelectContext(ctx, &listings, query, qb.args...); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// ListListings returns one page of matching listings and the total match count
func (r *PostgresRepository) ListListings(ctx context.Context, filter model.ListingFilter, limit, offset int) ([]model.PropertyListing, int, error) {
	qb := applyListingFilter(filter)
	whereClause := qb.where()

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", listingFrom, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, qb.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count results: %w", err)
	}

	limitArg := qb.placeholder(limit)
	offsetArg := qb.placeholder(offset)
	selectQuery := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY %s LIMIT %s OFFSET %s",
		listingColumns, listingFrom, whereClause, orderClause(filter.Order), limitArg, offsetArg)

	var listings []model.PropertyListing
	if err := r.db.SelectContext(ctx, &listings, selectQuery, qb.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, total, nil
}

// GetListingBySlug retrieves a single listing by its slug
func (r *PostgresRepository) GetListingBySlug(ctx context.Context, slug string) (*model.PropertyListing, error) {
	var listing model.PropertyListing
	query := fmt.Sprintf("SELECT %s %s WHERE bp.slug = $1", listingColumns, listingFrom)
	err := r.db.GetContext(ctx, &listing, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ListRelatedListings returns listings of the same type in the same location
func (r *PostgresRepository) ListRelatedListings(ctx context.Context, listing *model.PropertyListing) ([]model.PropertyListing, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE bp.property_type = $1 AND bp.location_id IS NOT DISTINCT FROM $2 AND bp.slug <> $3
		ORDER BY bp.id ASC`, listingColumns, listingFrom)

	var listings []model.PropertyListing
	if err := r.db.SelectContext(ctx, &listings, query, listing.PropertyType, listing.LocationID, listing.Slug); err != nil {
		return nil, fmt.Errorf("failed to fetch related listings: %w", err)
	}
	return listings, nil
}

// ListListingAmenities returns the feature amenities attached to a listing
func (r *PostgresRepository) ListListingAmenities(ctx context.Context, listingID int64) ([]model.FeatureAmenity, error) {
	query := `
		SELECT fa.id, fa.name
		FROM feature_amenities fa
		JOIN buy_property_feature_amenities bfa ON bfa.feature_amenity_id = fa.id
		WHERE bfa.property_id = $1
		ORDER BY fa.id
	`
	var amenities []model.FeatureAmenity
	if err := r.db.SelectContext(ctx, &amenities, query, listingID); err != nil {
		return nil, fmt.Errorf("failed to fetch listing amenities: %w", err)
	}
	return amenities, nil
}

// ListListingNearbyPlaces returns the nearby places attached to a listing
func (r *PostgresRepository) ListListingNearbyPlaces(ctx context.Context, listingID int64) ([]model.NearbyPlace, error) {
	query := `
		SELECT np.id, np.name, np.distance_value, np.distance_unit
		FROM nearby_places np
		JOIN buy_property_nearby_places bnp ON bnp.nearby_place_id = np.id
		WHERE bnp.property_id = $1
		ORDER BY np.id
	`
	var places []model.NearbyPlace
	if err := r.db.SelectContext(ctx, &places, query, listingID); err != nil {
		return nil, fmt.Errorf("failed to fetch listing nearby places: %w", err)
	}
	return places, nil
}

// FindApprovedSellListings returns approved owner listings of one kind
func (r *PostgresRepository) FindApprovedSellListings(ctx context.Context, kind model.SellKind, location *string, limit int) ([]model.SellListing, error) {
	var table, typeColumns string
	switch kind {
	case model.SellResidential:
		table = "sell_residential_properties"
		typeColumns = "sp.configuration, NULL::text AS commercial_type"
	case model.SellCommercial:
		table = "sell_commercial_properties"
		typeColumns = "NULL::text AS configuration, sp.commercial_type"
	default:
		return nil, fmt.Errorf("unknown sell listing kind %q", kind)
	}

	qb := newQueryBuilder("sp.is_approved = true")
	if location != nil {
		qb.addCondition("%s ILIKE $%d", "pl.name", "%"+*location+"%")
	}
	limitArg := qb.placeholder(limit)

	query := fmt.Sprintf(`
		SELECT
			sp.id, sp.project_name, %s, sp.status, sp.area, sp.budget,
			pl.name AS location_name, sp.contact_name, sp.contact_number, sp.contact_email, sp.is_approved
		FROM %s sp
		LEFT JOIN property_locations pl ON pl.id = sp.location_id
		WHERE %s
		ORDER BY sp.id ASC
		LIMIT %s
	`, typeColumns, table, qb.where(), limitArg)

	var listings []model.SellListing
	if err := r.db.SelectContext(ctx, &listings, query, qb.args...); err != nil {
		return nil, fmt.Errorf("failed to fetch %s sell listings: %w", kind, err)
	}
	for i := range listings {
		listings[i].Kind = kind
	}
	return listings, nil
}

// ListFeatureAmenities returns up to limit feature amenities
func (r *PostgresRepository) ListFeatureAmenities(ctx context.Context, limit int) ([]model.FeatureAmenity, error) {
	var amenities []model.FeatureAmenity
	err := r.db.SelectContext(ctx, &amenities, `SELECT id, name FROM feature_amenities ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feature amenities: %w", err)
	}
	return amenities, nil
}

// ListNearbyPlaces returns up to limit nearby places
func (r *PostgresRepository) ListNearbyPlaces(ctx context.Context, limit int) ([]model.NearbyPlace, error) {
	var places []model.NearbyPlace
	err := r.db.SelectContext(ctx, &places, `SELECT id, name, distance_value, distance_unit FROM nearby_places ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby places: %w", err)
	}
	return places, nil
}

// ListLocations returns every location ordered by id
func (r *PostgresRepository) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.SelectContext(ctx, &locations, `SELECT id, name FROM property_locations ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	return locations, nil
}

// ListKnownLocations returns every location name ordered by id
func (r *PostgresRepository) ListKnownLocations(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT name FROM property_locations ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to fetch location names: %w", err)
	}
	return names, nil
}

// CountActiveListings counts listings open for purchase
func (r *PostgresRepository) CountActiveListings(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM buy_properties WHERE is_property_active = true`); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// CountLocations counts known locations
func (r *PostgresRepository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM property_locations`); err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

// MeanArea returns the mean area of active listings of one property type
func (r *PostgresRepository) MeanArea(ctx context.Context, propertyType string) (float64, bool, error) {
	var mean sql.NullFloat64
	query := `SELECT AVG(area) FROM buy_properties WHERE is_property_active = true AND property_type = $1`
	if err := r.db.GetContext(ctx, &mean, query, propertyType); err != nil {
		return 0, false, fmt.Errorf("failed to compute mean area: %w", err)
	}
	return mean.Float64, mean.Valid, nil
}

// CreateInquiry stores an inquiry and fills in its id
func (r *PostgresRepository) CreateInquiry(ctx context.Context, inquiry *model.PropertyInquiry) error {
	query := `
		INSERT INTO property_inquiries (property_id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		inquiry.PropertyID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message, inquiry.CreatedAt,
	).Scan(&inquiry.ID)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// CreateSellListing stores an owner listing in the table for its kind and
// fills in its id
func (r *PostgresRepository) CreateSellListing(ctx context.Context, listing *model.SellListing) error {
	var table, typeColumn string
	var typeValue *string
	switch listing.Kind {
	case model.SellResidential:
		table, typeColumn, typeValue = "sell_residential_properties", "configuration", listing.Configuration
	case model.SellCommercial:
		table, typeColumn, typeValue = "sell_commercial_properties", "commercial_type", listing.CommercialType
	default:
		return fmt.Errorf("unknown sell listing kind %q", listing.Kind)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (project_name, %s, status, area, budget, location_id,
			contact_name, contact_number, contact_email, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, table, typeColumn)
	err := r.db.QueryRowxContext(ctx, query,
		listing.ProjectName, typeValue, listing.Status, listing.Area, listing.Budget, listing.LocationID,
		listing.ContactName, listing.ContactNumber, listing.ContactEmail, listing.IsApproved,
	).Scan(&listing.ID)
	if err != nil {
		return fmt.Errorf("failed to create %s sell listing: %w", listing.Kind, err)
	}
	return nil
}

// CreateInteriorDesignRequest stores a design request and fills in its id
func (r *PostgresRepository) CreateInteriorDesignRequest(ctx context.Context, req *model.InteriorDesignRequest) error {
	query := `
		INSERT INTO interior_design_requests (name, phone_number, property_types, sqft, service_types, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		req.Name, req.PhoneNumber, req.PropertyType, req.Sqft, req.ServiceType, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("failed to create interior design request: %w", err)
	}
	return nil
}

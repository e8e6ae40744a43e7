package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"testing"
	"time"

	"horizonbot/internal/config"
	"horizonbot/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepositoryFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

// closingListener accepts connections and hangs up straight away, so a
// connection attempt gets as far as the startup handshake
func closingListener(t *testing.T) *net.TCPAddr {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	return ln.Addr().(*net.TCPAddr)
}

func TestNewPostgresRepository_AcceptsConfigDSN(t *testing.T) {
	addr := closingListener(t)
	cfg := &config.Config{PostgreSQL: config.PostgreSQLConfig{
		Host: "127.0.0.1", Port: addr.Port, User: "app", Database: "horizon", SSLMode: "disable",
	}}

	dsns := map[string]string{
		"key value": cfg.GetPostgreSQLDSN(),
		"url":       fmt.Sprintf("postgres://app@127.0.0.1:%d/horizon?sslmode=disable", addr.Port),
	}
	for name, dsn := range dsns {
		t.Run(name, func(t *testing.T) {
			_, err := NewPostgresRepository(dsn, 1, 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to connect to database")
			assert.NotContains(t, err.Error(), "sslmode")
			assert.NotContains(t, err.Error(), "prefer_simple_protocol")
		})
	}
}

var listingRowColumns = []string{"id", "slug", "project_name", "property_type", "configuration", "location_name", "is_property_active"}

func TestPostgresRepository_ListListings(t *testing.T) {
	repo, mock := newMockRepository(t)

	filter := model.ListingFilter{ActiveOnly: true, Configuration: strPtr("2bhk"), Order: model.OldestFirst}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("2bhk").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`ORDER BY bp\.id ASC LIMIT \$2 OFFSET \$3`).
		WithArgs("2bhk", 6, 6).
		WillReturnRows(sqlmock.NewRows(listingRowColumns).
			AddRow(7, "satellite-sky", "Satellite Sky", "residential", "2bhk", "Satellite", true))

	listings, total, err := repo.ListListings(context.Background(), filter, 6, 6)
	require.NoError(t, err)

	assert.Equal(t, 7, total)
	require.Len(t, listings, 1)
	assert.Equal(t, "satellite-sky", listings[0].Slug)
	require.NotNil(t, listings[0].LocationName)
	assert.Equal(t, "Satellite", *listings[0].LocationName)
	assert.True(t, listings[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindActiveListings(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`pl\.name ILIKE \$1 .*ORDER BY bp\.id DESC`).
		WithArgs("%Bopal%").
		WillReturnRows(sqlmock.NewRows(listingRowColumns).
			AddRow(4, "bopal-heights", "Bopal Heights", "residential", "3bhk", "Bopal", true).
			AddRow(2, "green-acres", nil, "residential", "villa", "Bopal", true))

	listings, err := repo.FindActiveListings(context.Background(), model.ListingFilter{ActiveOnly: true, Location: strPtr("Bopal")})
	require.NoError(t, err)

	assert.Len(t, listings, 2)
	assert.Nil(t, listings[1].ProjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetListingBySlug(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`WHERE bp\.slug = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(listingRowColumns))

	listing, err := repo.GetListingBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, listing)

	mock.ExpectQuery(`WHERE bp\.slug = \$1`).
		WithArgs("broken").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.GetListingBySlug(context.Background(), "broken")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindApprovedSellListings(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`FROM sell_commercial_properties sp .*sp\.is_approved = true AND pl\.name ILIKE \$1.*LIMIT \$2`).
		WithArgs("%SG%", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_name", "configuration", "commercial_type", "area", "budget", "location_name", "contact_email", "is_approved"}).
			AddRow(3, "Market Square", nil, "shop", 400.0, 2500000, "SG Highway", "meena@example.com", true))

	listings, err := repo.FindApprovedSellListings(context.Background(), model.SellCommercial, strPtr("SG"), 2)
	require.NoError(t, err)

	require.Len(t, listings, 1)
	assert.Equal(t, model.SellCommercial, listings[0].Kind)
	assert.Equal(t, int64(2500000), listings[0].Budget)
	assert.Nil(t, listings[0].Configuration)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.FindApprovedSellListings(context.Background(), model.SellKind("land"), nil, 2)
	assert.Error(t, err)
}

func TestPostgresRepository_MeanArea(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(area)")).
		WithArgs("commercial").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(area)")).
		WithArgs("residential").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(1456.6))

	_, ok, err := repo.MeanArea(context.Background(), "commercial")
	require.NoError(t, err)
	assert.False(t, ok)

	mean, ok, err := repo.MeanArea(context.Background(), "residential")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1456.6, mean, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListKnownLocations(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM property_locations ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("SG Highway").AddRow("Bopal"))

	names, err := repo.ListKnownLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"SG Highway", "Bopal"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateInquiry(t *testing.T) {
	repo, mock := newMockRepository(t)

	inquiry := &model.PropertyInquiry{
		PropertyID: 1,
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Message:    "Is parking included?",
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO property_inquiries")).
		WithArgs(int64(1), "Asha", "asha@example.com", "9876543210", "Is parking included?", inquiry.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repo.CreateInquiry(context.Background(), inquiry))
	assert.Equal(t, int64(42), inquiry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateSellListing(t *testing.T) {
	repo, mock := newMockRepository(t)
	status := "resale"
	bopal := int64(2)

	listing := &model.SellListing{
		Kind:          model.SellResidential,
		ProjectName:   "Riverside Homes",
		Configuration: strPtr("2bhk"),
		Status:        &status,
		Area:          1100,
		Budget:        5200000,
		LocationID:    &bopal,
		ContactEmail:  "kiran@example.com",
	}

	mock.ExpectQuery(`INSERT INTO sell_residential_properties \(project_name, configuration, status`).
		WithArgs("Riverside Homes", listing.Configuration, listing.Status, 1100.0, int64(5200000), listing.LocationID,
			nil, nil, "kiran@example.com", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	require.NoError(t, repo.CreateSellListing(context.Background(), listing))
	assert.Equal(t, int64(12), listing.ID)

	mock.ExpectQuery(`INSERT INTO sell_commercial_properties \(project_name, commercial_type, status`).
		WillReturnError(errors.New("violates foreign key constraint"))

	err := repo.CreateSellListing(context.Background(), &model.SellListing{Kind: model.SellCommercial, ProjectName: "Trade Centre"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create commercial sell listing")
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, repo.CreateSellListing(context.Background(), &model.SellListing{Kind: model.SellKind("land")}))
}

func TestPostgresRepository_CreateInteriorDesignRequest(t *testing.T) {
	repo, mock := newMockRepository(t)

	req := &model.InteriorDesignRequest{
		Name:         "Farah",
		PhoneNumber:  "+919876543210",
		PropertyType: "penthouse",
		ServiceType:  "turnkey",
		CreatedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO interior_design_requests")).
		WithArgs("Farah", "+919876543210", "penthouse", req.Sqft, "turnkey", req.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	require.NoError(t, repo.CreateInteriorDesignRequest(context.Background(), req))
	assert.Equal(t, int64(3), req.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"fmt"

	"horizonbot/internal/config"
	"horizonbot/internal/service"
)

// Store is a catalog that also backs the browse, detail, inquiry and
// submission endpoints
type Store interface {
	service.Catalog
	service.ListingStore
	service.SubmissionStore
}

var (
	_ Store = (*PostgresRepository)(nil)
	_ Store = (*MemoryRepository)(nil)
)

// Open builds the store selected by cfg. The returned close function
// releases its resources.
func Open(cfg *config.Config) (Store, func() error, error) {
	switch cfg.Catalog.Backend {
	case config.BackendMemory:
		seed, err := LoadSeed(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		return NewMemoryRepository(seed), func() error { return nil }, nil
	case config.BackendPostgres:
		repo, err := NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}

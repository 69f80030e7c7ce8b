package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

// SQLDistanceCache is a Postgres-backed cache for routed pair distances,
// shared across service instances.
type SQLDistanceCache struct {
	DB *sql.DB
}

func NewSQLDistanceCache(db *sql.DB) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db}
}

// InitPostgresSchema creates the distance cache table if it does not exist.
func InitPostgresSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS distance_cache (
        origin      TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_km DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`)
	if err != nil {
		return fmt.Errorf("init postgres distance cache schema: %w", err)
	}
	return nil
}

// Fetch the cached distance for one origin/destination pair.
func (s *SQLDistanceCache) Get(
	ctx context.Context,
	origin, destination domain.Point,
) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("distance cache: db is nil")
	}

	q := `
	SELECT distance_km
    FROM distance_cache
    WHERE origin = $1 AND destination = $2;
	`

	var km float64
	err = s.DB.QueryRowContext(ctx, q, pointKey(origin), pointKey(destination)).Scan(&km)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return km, true, nil
}

// Store the routed distance for one origin/destination pair.
func (s *SQLDistanceCache) Put(
	ctx context.Context,
	origin, destination domain.Point,
	km float64,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := `
	INSERT INTO distance_cache (origin, destination, distance_km)
    VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km;
	`

	if _, err := s.DB.ExecContext(ctx, q, pointKey(origin), pointKey(destination), km); err != nil {
		return fmt.Errorf("insert distance cache: %w", err)
	}

	return nil
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
)

// SQLite backed cache for routed pair distances. Suited to single-process
// local runs; use the Postgres or Redis variants when instances share a cache.
type SqliteDistanceCache struct {
	DB *sql.DB
}

func NewSqliteDistanceCache(db *sql.DB) *SqliteDistanceCache {
	return &SqliteDistanceCache{DB: db}
}

// InitSqliteSchema creates the distance cache table if it does not exist.
func InitSqliteSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS distance_cache (
        origin      TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_km REAL NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`)
	if err != nil {
		return fmt.Errorf("init sqlite distance cache schema: %w", err)
	}
	return nil
}

// Fetch the cached distance for one origin/destination pair.
func (s *SqliteDistanceCache) Get(
	ctx context.Context,
	origin, destination domain.Point,
) (float64, bool, error) {
	if s.DB == nil {
		return 0, false, errors.New("distance cache: db is nil")
	}

	q := `
	SELECT distance_km
    FROM distance_cache
    WHERE origin = ? AND destination = ?;
	`

	var km float64
	err := s.DB.QueryRowContext(ctx, q, pointKey(origin), pointKey(destination)).Scan(&km)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return km, true, nil
}

// Store the routed distance for one origin/destination pair.
func (s *SqliteDistanceCache) Put(
	ctx context.Context,
	origin, destination domain.Point,
	km float64,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO distance_cache (origin, destination, distance_km)
    VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, pointKey(origin), pointKey(destination), km); err != nil {
		return fmt.Errorf("insert distance cache: %w", err)
	}

	return nil
}

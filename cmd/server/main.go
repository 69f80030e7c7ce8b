package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/distance"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
)

// main is the application composition root.
// It wires the selected distance cache and the OSRM adapter behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	baseURL := config.Get("OSRM_BASE_URL", distance.DefaultBaseURL)
	backend := config.Get("CACHE_BACKEND", "none")

	distanceCache, err := openDistanceCache(backend)
	if err != nil {
		log.Fatal(err)
	}

	provider := distance.NewOSRMDistanceProvider(baseURL, distanceCache)
	router := api.NewRouter(provider)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s osrm=%s cache=%s", port, baseURL, backend)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDistanceCache builds the cross-request distance cache named by
// CACHE_BACKEND: none (default), sqlite, postgres, or redis.
func openDistanceCache(backend string) (ports.DistanceCache, error) {
	switch backend {
	case "none", "":
		return nil, nil

	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
		}
		if err := cache.InitSqliteSchema(db); err != nil {
			return nil, err
		}
		return cache.NewSqliteDistanceCache(db), nil

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres cache")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		return cache.NewSQLDistanceCache(pg), nil

	case "redis":
		addr := config.Get("REDIS_ADDR", "localhost:6379")
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisDistanceCache(client, 24*time.Hour), nil

	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
}

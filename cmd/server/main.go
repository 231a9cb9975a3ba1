package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trip-log-service/internal/adapters/broker"
	"trip-log-service/internal/adapters/cache"
	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/api"
	"trip-log-service/internal/config"
	"trip-log-service/internal/platform/db"
	"trip-log-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS or Google, RabbitMQ)
// behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		conn         *sql.DB
		repo         ports.TripRepository
		routeCache   ports.RouteCache
		geocodeCache distance.GeocodeCache
		events       ports.TripEventPublisher
		healthCheck  func(context.Context) error
	)

	if cfg.DatabaseURL != "" {
		conn, err = db.Open(ctx, cfg.DatabaseURL, db.Pool{MaxConns: cfg.DBMaxConns})
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewPostgresTripRepository(conn)
		routeCache = cache.NewSQLRouteCache(conn, cfg.RouteCacheTTL)
		geocodeCache = cache.NewSQLGeocodeCache(conn)
		healthCheck = conn.PingContext
	} else {
		log.Println("DATABASE_URL not set; trips are kept in memory")
		repo = repositories.NewMemoryTripRepository()
	}

	// Redis takes over route caching when configured.
	if cfg.RedisAddr != "" {
		rdb, err := db.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer rdb.Close()
		routeCache = cache.NewRedisRouteCache(rdb, cfg.RouteCacheTTL)
	}

	provider, err := newRouteProvider(cfg, routeCache, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RabbitMQURL != "" {
		pub, err := broker.NewRabbitTripPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
		events = pub
	}

	router := api.NewRouter(api.Deps{
		Repo:            repo,
		Provider:        provider,
		Events:          events,
		AverageSpeedMPH: cfg.AverageSpeedMPH,
		HealthCheck:     healthCheck,
	})

	// Timeouts are tuned for cold-cache route planning (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s provider=%s", cfg.Port, cfg.RouteProvider)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

func newRouteProvider(
	cfg config.Config,
	routeCache ports.RouteCache,
	geocodeCache distance.GeocodeCache,
) (ports.RouteProvider, error) {
	switch cfg.RouteProvider {
	case config.ProviderGoogle:
		return distance.NewGoogleRouteProvider(cfg.GoogleMapsAPIKey, routeCache)
	case config.ProviderORS:
		return distance.NewORSRouteProvider(cfg.ORSAPIKey, routeCache, geocodeCache, cfg.GeocodeConcurrency)
	default:
		return nil, fmt.Errorf("unknown route provider %q", cfg.RouteProvider)
	}
}

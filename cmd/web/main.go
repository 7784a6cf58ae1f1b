package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "hanoi_hotel/internal/adapters/http_server"
	"hanoi_hotel/internal/adapters/observability"
	redisad "hanoi_hotel/internal/adapters/redis"
	"hanoi_hotel/internal/app"
	"hanoi_hotel/internal/domain"
	"hanoi_hotel/internal/shared"
	"hanoi_hotel/internal/storage/csvfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// load/validate phase: the catalog and both logs must be usable or the
	// process does not start
	table, err := csvfile.LoadHotelTable(cfg.HotelsCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.HotelsCSV).Msg("hotel file load failed")
	}
	catalog := app.NewCatalog(table)
	log.Info().Int("hotels", catalog.Len()).Msg("hotel catalog loaded")

	reviews, err := csvfile.OpenReviewStore(cfg.ReviewsCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ReviewsCSV).Msg("review log open failed")
	}
	bookings, err := csvfile.OpenBookingStore(cfg.BookingsCSV)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.BookingsCSV).Msg("booking log open failed")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("review cache enabled")
	}

	q := app.NewQueryService(catalog, reviews, cache, cfg.CacheTTL)
	c := app.NewCommandService(catalog, reviews, bookings, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c, WriteRPS: cfg.WriteRPS, WriteBurst: cfg.WriteBurst})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("web listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

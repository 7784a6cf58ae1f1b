package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hanoi_hotel/internal/adapters/observability"
	"hanoi_hotel/internal/domain"
	"hanoi_hotel/internal/shared"
	"hanoi_hotel/internal/storage/csvfile"
	mysqlrepo "hanoi_hotel/internal/storage/mysql"
)

// Archiver: copies the review and booking logs into MySQL for reporting.
// Safe to re-run; the archive tables dedup on row identity.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().
		Str("reviews", cfg.ReviewsCSV).
		Str("bookings", cfg.BookingsCSV).
		Int("workers", cfg.Workers).
		Msg("archiver starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	byHotel := loadReviews(cfg.ReviewsCSV)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	for hotel, batch := range byHotel {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(hotel string, batch []domain.Review) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.ArchiveReviews(ctx, batch); err != nil {
				log.Warn().Str("hotel", hotel).Err(err).Msg("archive reviews failed")
				return
			}
			log.Info().Str("hotel", hotel).Int("count", len(batch)).Msg("reviews archived")
		}(hotel, batch)
	}
	wg.Wait()

	bookings := loadBookings(cfg.BookingsCSV)
	if err := repo.ArchiveBookings(ctx, bookings); err != nil {
		log.Fatal().Err(err).Msg("archive bookings failed")
	}
	log.Info().Int("bookings", len(bookings)).Msg("archiver completed")
}

func loadReviews(path string) map[string][]domain.Review {
	t, err := csvfile.ReadTable(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("review log read failed")
	}
	out := make(map[string][]domain.Review)
	for _, r := range t.Rows {
		name := r.Str("hotel_name")
		if name == "" {
			continue
		}
		rating := 0
		if f, ok := r.Float("rating"); ok {
			rating = int(f)
		}
		out[name] = append(out[name], domain.Review{
			HotelName: name,
			User:      r.Str("user"),
			Rating:    rating,
			Comment:   r.Str("comment"),
		})
	}
	return out
}

func loadBookings(path string) []domain.Booking {
	t, err := csvfile.ReadTable(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("booking log read failed")
	}
	var out []domain.Booking
	for _, r := range t.Rows {
		ts, terr := time.Parse(time.RFC3339, r.Str("booking_time"))
		if terr != nil {
			log.Warn().Str("hotel", r.Str("hotel_name")).Str("booking_time", r.Str("booking_time")).
				Msg("skipping booking row with unparseable timestamp")
			continue
		}
		b := domain.Booking{
			HotelName:       r.Str("hotel_name"),
			RoomType:        r.Str("room_type"),
			UserName:        r.Str("user_name"),
			Phone:           r.Str("phone"),
			Email:           r.Str("email"),
			CheckinDate:     r.Str("checkin_date"),
			SpecialRequests: r.Str("special_requests"),
			BookingTime:     ts,
		}
		if f, ok := r.Float("price"); ok {
			b.Price = f
		}
		if f, ok := r.Float("num_adults"); ok {
			b.NumAdults = int(f)
		}
		if f, ok := r.Float("num_children"); ok {
			b.NumChildren = int(f)
		}
		if f, ok := r.Float("nights"); ok {
			b.Nights = int(f)
		}
		out = append(out, b)
	}
	return out
}

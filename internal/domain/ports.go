package domain

import "context"

type ReviewStore interface {
	// ListFor re-reads the log from disk so appends from other requests
	// are visible immediately.
	ListFor(hotelName string) ([]Review, error)
	Append(r Review) error
}

type BookingStore interface {
	// Append only. Nothing in the serving path reads bookings back.
	Append(b Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

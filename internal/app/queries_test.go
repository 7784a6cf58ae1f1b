package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hanoi_hotel/internal/app"
	"hanoi_hotel/internal/domain"
	"hanoi_hotel/internal/storage/csvfile"
)

// ---- fakes ----

type fakeReviews struct {
	items     []domain.Review
	listCalls int
}

func (f *fakeReviews) ListFor(name string) ([]domain.Review, error) {
	f.listCalls++
	var out []domain.Review
	for _, r := range f.items {
		if r.HotelName == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Append(r domain.Review) error {
	f.items = append(f.items, r)
	return nil
}

type fakeBookings struct{ items []domain.Booking }

func (f *fakeBookings) Append(b domain.Booking) error {
	f.items = append(f.items, b)
	return nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*[]domain.Review); ok {
		*d = v.([]domain.Review)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func testCatalog() *app.Catalog {
	return app.NewCatalog(&csvfile.Table{Rows: []csvfile.Row{
		{"name": "Ocean View", "city": "Hanoi", "price": "100", "stars": "5", "rating": "4.2"},
		{"name": "River Inn", "city": "Hue", "price": "300", "stars": "3"},
	}})
}

// ---- tests ----

func TestHotelDetail_AverageRating(t *testing.T) {
	rs := &fakeReviews{items: []domain.Review{
		{HotelName: "Ocean View", User: "a", Rating: 5},
		{HotelName: "Ocean View", User: "b", Rating: 4},
		{HotelName: "Ocean View", User: "c", Rating: 3},
		{HotelName: "River Inn", User: "d", Rating: 1},
	}}
	q := app.NewQueryService(testCatalog(), rs, nil, time.Minute)

	d, err := q.HotelDetail(context.Background(), "Ocean View")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.AvgRating == nil || *d.AvgRating != 4.0 {
		t.Fatalf("avg of [5,4,3] = %v, want 4.0", d.AvgRating)
	}
	if len(d.Reviews) != 3 {
		t.Fatalf("reviews = %d, want 3", len(d.Reviews))
	}
}

func TestHotelDetail_RatingFallback(t *testing.T) {
	q := app.NewQueryService(testCatalog(), &fakeReviews{}, nil, time.Minute)

	// no reviews: static rating column wins
	d, err := q.HotelDetail(context.Background(), "Ocean View")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.AvgRating == nil || *d.AvgRating != 4.2 {
		t.Fatalf("fallback rating = %v, want 4.2", d.AvgRating)
	}

	// no reviews and no static rating: no rating at all
	d, err = q.HotelDetail(context.Background(), "River Inn")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.AvgRating != nil {
		t.Fatalf("expected nil rating, got %v", *d.AvgRating)
	}
}

func TestHotelDetail_RoomsAndFeatures(t *testing.T) {
	q := app.NewQueryService(testCatalog(), &fakeReviews{}, nil, time.Minute)
	d, err := q.HotelDetail(context.Background(), "Ocean View")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(d.Rooms) != 3 || d.Rooms[2].Price != 250 {
		t.Fatalf("detail rooms = %+v, want suite at 250", d.Rooms)
	}
	if _, ok := d.Features["sea_view"]; !ok {
		t.Fatalf("features missing sea_view: %v", d.Features)
	}
}

func TestHotelDetail_NotFound(t *testing.T) {
	q := app.NewQueryService(testCatalog(), &fakeReviews{}, nil, time.Minute)
	if _, err := q.HotelDetail(context.Background(), "Nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookPage_DoubleRoomMultiplier(t *testing.T) {
	q := app.NewQueryService(testCatalog(), &fakeReviews{}, nil, time.Minute)
	v, err := q.BookPage("Ocean View")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Rooms[1].Type != "Phòng đôi" || v.Rooms[1].Price != 150 {
		t.Fatalf("double room = %+v, want Phòng đôi at 150", v.Rooms[1])
	}
	if v.Rooms[2].Price != 300 {
		t.Fatalf("suite on the selection page = %v, want 300", v.Rooms[2].Price)
	}
	if _, err := q.BookPage("Nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReviews_CacheAsideAndInvalidation(t *testing.T) {
	rs := &fakeReviews{items: []domain.Review{{HotelName: "Ocean View", User: "a", Rating: 5}}}
	cache := &fakeCache{}
	q := app.NewQueryService(testCatalog(), rs, cache, time.Minute)
	cmd := app.NewCommandService(testCatalog(), rs, &fakeBookings{}, cache)

	ctx := context.Background()
	if _, err := q.HotelDetail(ctx, "Ocean View"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := q.HotelDetail(ctx, "Ocean View"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rs.listCalls != 1 {
		t.Fatalf("second read should be served from cache, store reads = %d", rs.listCalls)
	}

	// append invalidates, so the new review is visible exactly once
	if err := cmd.AddReview(ctx, "Ocean View", "b", 3, "ổn"); err != nil {
		t.Fatalf("add review: %v", err)
	}
	d, err := q.HotelDetail(ctx, "Ocean View")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(d.Reviews) != 2 {
		t.Fatalf("after append expected 2 reviews, got %d", len(d.Reviews))
	}
	if rs.listCalls != 2 {
		t.Fatalf("append must drop the cache key, store reads = %d", rs.listCalls)
	}
}

func TestAddReview_AnonymousDefault(t *testing.T) {
	rs := &fakeReviews{}
	cmd := app.NewCommandService(testCatalog(), rs, &fakeBookings{}, nil)
	if err := cmd.AddReview(context.Background(), "Ocean View", "   ", 4, "đẹp"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rs.items[0].User != "Anonymous" {
		t.Fatalf("blank user = %q, want Anonymous", rs.items[0].User)
	}
}

func TestCreateBooking_DerivedFields(t *testing.T) {
	bs := &fakeBookings{}
	cmd := app.NewCommandService(testCatalog(), &fakeReviews{}, bs, nil)

	b, err := cmd.CreateBooking(context.Background(), app.BookingInput{
		HotelName:   "Ocean View",
		RoomType:    "Phòng đôi",
		Price:       "150",
		FullName:    "Trần B",
		Phone:       "0900000000",
		Adults:      "not-a-number",
		Children:    "",
		CheckinDate: "2026-09-01",
		Note:        "tầng cao",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Price != 150 || b.NumAdults != 1 || b.NumChildren != 0 {
		t.Fatalf("defaults wrong: %+v", b)
	}
	if b.Nights != 1 {
		t.Fatalf("nights = %d, always 1", b.Nights)
	}
	if b.BookingTime.IsZero() {
		t.Fatalf("booking_time not stamped")
	}
	if len(bs.items) != 1 {
		t.Fatalf("booking not appended")
	}

	// empty form price falls back to the hotel's base price
	b, err = cmd.CreateBooking(context.Background(), app.BookingInput{
		HotelName: "Ocean View", RoomType: "Phòng nhỏ", FullName: "x", Phone: "y", CheckinDate: "2026-09-02",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Price != 100 {
		t.Fatalf("fallback price = %v, want 100", b.Price)
	}

	if _, err := cmd.CreateBooking(context.Background(), app.BookingInput{HotelName: "Nope"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

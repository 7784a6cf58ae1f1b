package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"hanoi_hotel/internal/domain"
)

type CommandService struct {
	catalog  *Catalog
	reviews  domain.ReviewStore
	bookings domain.BookingStore
	cache    domain.Cache
	now      func() time.Time
}

func NewCommandService(cat *Catalog, rs domain.ReviewStore, bs domain.BookingStore, c domain.Cache) *CommandService {
	return &CommandService{catalog: cat, reviews: rs, bookings: bs, cache: c, now: time.Now}
}

// AddReview appends one review. The hotel name is not checked against the
// catalog; orphaned references are accepted, as in the data files themselves.
func (s *CommandService) AddReview(ctx context.Context, hotelName, user string, rating int, comment string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		user = "Anonymous"
	}
	err := s.reviews.Append(domain.Review{
		HotelName: hotelName,
		User:      user,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	})
	if err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, reviewsKey(hotelName))
	}
	return nil
}

// BookingInput carries raw form values. Numeric fields are strings so that
// malformed input defaults silently instead of erroring.
type BookingInput struct {
	HotelName   string
	RoomType    string
	Price       string // falls back to the hotel's base price
	FullName    string
	Phone       string
	Email       string
	Adults      string // default 1
	Children    string // default 0
	CheckinDate string
	Note        string
}

// CreateBooking derives the stored record and appends it. Nights is always
// recorded as 1. Returns the record as written, including the server
// timestamp.
func (s *CommandService) CreateBooking(ctx context.Context, in BookingInput) (domain.Booking, error) {
	h, ok := s.catalog.Find(in.HotelName)
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}

	price := basePrice(h)
	if in.Price != "" {
		if f, err := strconv.ParseFloat(in.Price, 64); err == nil {
			price = f
		}
	}

	b := domain.Booking{
		HotelName:       in.HotelName,
		RoomType:        in.RoomType,
		Price:           price,
		UserName:        in.FullName,
		Phone:           in.Phone,
		Email:           in.Email,
		NumAdults:       atoiDefault(in.Adults, 1),
		NumChildren:     atoiDefault(in.Children, 0),
		CheckinDate:     in.CheckinDate,
		Nights:          1,
		SpecialRequests: in.Note,
		BookingTime:     s.now(),
	}
	if err := s.bookings.Append(b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func atoiDefault(v string, def int) int {
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

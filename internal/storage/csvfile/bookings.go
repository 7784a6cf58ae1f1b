package csvfile

import (
	"os"
	"strconv"
	"sync"
	"time"

	"hanoi_hotel/internal/adapters/observability"
	"hanoi_hotel/internal/domain"
)

var bookingColumns = []string{
	"hotel_name", "room_type", "price", "user_name", "phone", "email",
	"num_adults", "num_children", "checkin_date", "nights", "special_requests", "booking_time",
}

// BookingStore is append-only; nothing in the serving path reads it back.
// Same locked read-modify-rewrite cycle as the review store.
type BookingStore struct {
	path string
	mu   sync.Mutex
}

func OpenBookingStore(path string) (*BookingStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := writeTable(path, bookingColumns, nil); werr != nil {
			return nil, werr
		}
		observability.ObserveStore("bookings", "create", 0)
		return &BookingStore{path: path}, nil
	}
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if !t.HasColumn("hotel_name") {
		return nil, &MissingColumnError{Path: path, Column: "hotel_name"}
	}
	return &BookingStore{path: path}, nil
}

func (s *BookingStore) Append(b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	t, err := ReadTable(s.path)
	if err != nil {
		return err
	}
	t.Rows = append(t.Rows, Row{
		"hotel_name":       b.HotelName,
		"room_type":        b.RoomType,
		"price":            strconv.FormatFloat(b.Price, 'f', -1, 64),
		"user_name":        b.UserName,
		"phone":            b.Phone,
		"email":            b.Email,
		"num_adults":       strconv.Itoa(b.NumAdults),
		"num_children":     strconv.Itoa(b.NumChildren),
		"checkin_date":     b.CheckinDate,
		"nights":           strconv.Itoa(b.Nights),
		"special_requests": b.SpecialRequests,
		"booking_time":     b.BookingTime.Format(time.RFC3339),
	})
	err = writeTable(s.path, t.Columns, t.Rows)
	observability.ObserveStore("bookings", "append", time.Since(start))
	return err
}

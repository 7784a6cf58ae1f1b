package csvfile

import (
	"os"
	"strconv"
	"sync"
	"time"

	"hanoi_hotel/internal/adapters/observability"
	"hanoi_hotel/internal/domain"
)

var reviewColumns = []string{"hotel_name", "user", "rating", "comment"}

// ReviewStore persists reviews as an append-only log rewritten whole on each
// append. The mutex closes the original's lost-update race: it is held for
// the full read-modify-rewrite cycle.
type ReviewStore struct {
	path string
	mu   sync.RWMutex
}

// OpenReviewStore creates the log with a header row when absent and rejects
// an existing file that lacks the hotel_name column.
func OpenReviewStore(path string) (*ReviewStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := writeTable(path, reviewColumns, nil); werr != nil {
			return nil, werr
		}
		observability.ObserveStore("reviews", "create", 0)
		return &ReviewStore{path: path}, nil
	}
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if !t.HasColumn("hotel_name") {
		return nil, &MissingColumnError{Path: path, Column: "hotel_name"}
	}
	return &ReviewStore{path: path}, nil
}

// ListFor re-reads the whole log so appends from other requests are always
// visible, then returns matches in file order.
func (s *ReviewStore) ListFor(hotelName string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Now()
	t, err := ReadTable(s.path)
	observability.ObserveStore("reviews", "read", time.Since(start))
	if err != nil {
		return nil, err
	}

	var out []domain.Review
	for _, r := range t.Rows {
		if r.Str("hotel_name") != hotelName {
			continue
		}
		rating := 0
		if f, ok := r.Float("rating"); ok {
			rating = int(f)
		}
		out = append(out, domain.Review{
			HotelName: hotelName,
			User:      r.Str("user"),
			Rating:    rating,
			Comment:   r.Str("comment"),
		})
	}
	return out, nil
}

func (s *ReviewStore) Append(rv domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	t, err := ReadTable(s.path)
	if err != nil {
		return err
	}
	t.Rows = append(t.Rows, Row{
		"hotel_name": rv.HotelName,
		"user":       rv.User,
		"rating":     strconv.Itoa(rv.Rating),
		"comment":    rv.Comment,
	})
	err = writeTable(s.path, t.Columns, t.Rows)
	observability.ObserveStore("reviews", "append", time.Since(start))
	return err
}

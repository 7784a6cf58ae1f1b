package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hanoi_hotel/internal/domain"
)

func TestReviewStore_CreatesFileWithHeader(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reviews.csv")
	if _, err := OpenReviewStore(p); err != nil {
		t.Fatalf("open: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(b), "hotel_name,user,rating,comment") {
		t.Fatalf("header missing: %q", b)
	}
}

func TestReviewStore_AppendThenList(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reviews.csv")
	s, err := OpenReviewStore(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rv := domain.Review{HotelName: "Ocean View", User: "Lan", Rating: 5, Comment: "tuyệt vời"}
	if err := s.Append(rv); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := s.ListFor("Ocean View")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0] != rv {
		t.Fatalf("expected exactly the appended review, got %+v", got)
	}
	// other hotels see nothing
	other, err := s.ListFor("River Inn")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no reviews for River Inn, got %+v", other)
	}
}

func TestReviewStore_RejectsLogWithoutHotelName(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reviews.csv")
	if err := os.WriteFile(p, []byte("user,rating,comment\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := OpenReviewStore(p)
	var mc *MissingColumnError
	if !errors.As(err, &mc) || mc.Column != "hotel_name" {
		t.Fatalf("expected MissingColumnError for hotel_name, got %v", err)
	}
}

func TestReviewStore_ConcurrentAppendsLoseNothing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "reviews.csv")
	s, err := OpenReviewStore(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Append(domain.Review{HotelName: "Ocean View", User: "u", Rating: i % 5, Comment: "ok"})
		}(i)
	}
	wg.Wait()
	got, err := s.ListFor("Ocean View")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != n {
		t.Fatalf("lost updates: got %d of %d reviews", len(got), n)
	}
}

func TestBookingStore_Append(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bookings.csv")
	s, err := OpenBookingStore(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	b := domain.Booking{
		HotelName:   "Ocean View",
		RoomType:    "Phòng đôi",
		Price:       150,
		UserName:    "Nguyễn Văn A",
		Phone:       "0901234567",
		NumAdults:   2,
		NumChildren: 1,
		CheckinDate: "2026-09-01",
		Nights:      1,
		BookingTime: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	if err := s.Append(b); err != nil {
		t.Fatalf("append: %v", err)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(raw)
	for _, want := range []string{"Ocean View", "Phòng đôi", "150", "2026-08-30T10:00:00Z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("booking row missing %q in %q", want, out)
		}
	}
	// header stays first
	if !strings.HasPrefix(strings.TrimPrefix(out, "\uFEFF"), "hotel_name,") {
		t.Fatalf("header not first: %q", out)
	}
}

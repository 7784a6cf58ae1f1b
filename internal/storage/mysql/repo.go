package mysql

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"hanoi_hotel/internal/domain"
)

// Repo archives the flat-file logs into MySQL for reporting. Nothing in the
// serving path depends on it.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Migrate(ctx context.Context) error {
	for _, stmt := range []string{createReviewArchiveSQL, createBookingArchiveSQL} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate archive schema: %w", err)
		}
	}
	return nil
}

// reviewHash is the dedup key: the log has no row IDs, so identity is the
// full row content.
func reviewHash(rv domain.Review) string {
	sig := strings.Join([]string{rv.HotelName, rv.User, fmt.Sprintf("%d", rv.Rating), rv.Comment}, "|")
	sum := sha1.Sum([]byte(sig))
	return hex.EncodeToString(sum[:])
}

func (r *Repo) ArchiveReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*5)
	for _, rv := range rs {
		values = append(values, "(?,?,?,?,?)")
		args = append(args, rv.HotelName, rv.User, rv.Rating, rv.Comment, reviewHash(rv))
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) ArchiveBookings(ctx context.Context, bs []domain.Booking) error {
	if len(bs) == 0 {
		return nil
	}
	values := make([]string, 0, len(bs))
	args := make([]any, 0, len(bs)*12)
	for _, b := range bs {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			b.HotelName,
			b.RoomType,
			b.Price,
			b.UserName,
			b.Phone,
			b.Email,
			b.NumAdults,
			b.NumChildren,
			b.CheckinDate,
			b.Nights,
			b.SpecialRequests,
			b.BookingTime.UTC(),
		)
	}
	sqlStr := insertBookingsPrefix + strings.Join(values, ",") + insertBookingsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) CountReviews(ctx context.Context, hotelName string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review_archive WHERE hotel_name = ?`, hotelName).Scan(&n)
	return n, err
}

func (r *Repo) CountBookings(ctx context.Context, hotelName string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM booking_archive WHERE hotel_name = ?`, hotelName).Scan(&n)
	return n, err
}

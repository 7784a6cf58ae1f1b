package app

import (
	"context"
	"math"
	"time"

	"hanoi_hotel/internal/domain"
)

type QueryService struct {
	catalog  *Catalog
	reviews  domain.ReviewStore
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires the read side. cache may be nil; the review log is
// then re-read on every detail view.
func NewQueryService(cat *Catalog, rs domain.ReviewStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: cat, reviews: rs, cache: c, cacheTTL: ttl}
}

func (s *QueryService) Cities() []string { return s.catalog.Cities() }

func (s *QueryService) Recommend(c Criteria) []domain.Hotel {
	return Filter(s.catalog.All(), c)
}

func (s *QueryService) HotelDetail(ctx context.Context, name string) (domain.HotelDetail, error) {
	h, ok := s.catalog.Find(name)
	if !ok {
		return domain.HotelDetail{}, domain.ErrNotFound
	}

	rvs, err := s.listReviews(ctx, name)
	if err != nil {
		return domain.HotelDetail{}, err
	}

	d := domain.HotelDetail{
		Hotel:    h,
		Features: features(h),
		Rooms:    detailRooms(basePrice(h)),
		Reviews:  rvs,
	}

	if len(rvs) > 0 {
		sum := 0
		for _, r := range rvs {
			sum += r.Rating
		}
		avg := math.Round(float64(sum)/float64(len(rvs))*10) / 10
		d.AvgRating = &avg
	} else if h.Rating != nil {
		// no reviews: fall back to the static rating column
		r := *h.Rating
		d.AvgRating = &r
	}
	return d, nil
}

func (s *QueryService) BookPage(name string) (domain.BookView, error) {
	h, ok := s.catalog.Find(name)
	if !ok {
		return domain.BookView{}, domain.ErrNotFound
	}
	return domain.BookView{Hotel: h, Rooms: selectionRooms(basePrice(h))}, nil
}

func reviewsKey(name string) string { return "reviews:" + name }

// listReviews is cache-aside: the log stays the source of truth and the key
// is dropped on every append, so this process's own writes are never stale.
func (s *QueryService) listReviews(ctx context.Context, name string) ([]domain.Review, error) {
	if s.cache != nil {
		var cached []domain.Review
		if ok, _ := s.cache.Get(ctx, reviewsKey(name), &cached); ok {
			return cached, nil
		}
	}
	rvs, err := s.reviews.ListFor(name)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, reviewsKey(name), rvs, int(s.cacheTTL.Seconds()))
	}
	return rvs, nil
}

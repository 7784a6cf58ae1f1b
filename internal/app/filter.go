package app

import (
	"sort"
	"strconv"
	"strings"

	"hanoi_hotel/internal/domain"
)

// Criteria carries the raw query inputs. Numeric fields stay strings so the
// engine itself decides what malformed input means (the filter is skipped,
// never an error).
type Criteria struct {
	City   string
	Budget string
	Stars  string
	Buffet bool
	Pool   bool
	Sea    bool
	View   bool
	Sort   string // asc|desc on price; anything else keeps load order
}

// Filter applies the criteria to a copy of the source slice; the input is
// never mutated.
func Filter(hotels []domain.Hotel, c Criteria) []domain.Hotel {
	out := make([]domain.Hotel, len(hotels))
	copy(out, hotels)

	if city := strings.ToLower(c.City); city != "" {
		out = keep(out, func(h domain.Hotel) bool {
			return strings.ToLower(h.City) == city
		})
	}

	if c.Budget != "" {
		if budget, err := strconv.ParseFloat(c.Budget, 64); err == nil {
			out = keep(out, func(h domain.Hotel) bool {
				return h.Price != nil && *h.Price <= budget
			})
		}
	}

	if c.Stars != "" {
		if stars, err := strconv.Atoi(c.Stars); err == nil {
			floor := float64(stars)
			out = keep(out, func(h domain.Hotel) bool {
				return h.Stars != nil && *h.Stars >= floor
			})
		}
	}

	if c.Buffet {
		out = keep(out, func(h domain.Hotel) bool { return h.Buffet })
	}
	if c.Pool {
		out = keep(out, func(h domain.Hotel) bool { return h.Pool })
	}
	if c.Sea {
		out = keep(out, func(h domain.Hotel) bool { return h.SeaView })
	}
	if c.View {
		out = keep(out, func(h domain.Hotel) bool { return h.View })
	}

	switch c.Sort {
	case "asc":
		sort.SliceStable(out, func(i, j int) bool { return priceLess(out[i], out[j]) })
	case "desc":
		sort.SliceStable(out, func(i, j int) bool { return priceGreater(out[i], out[j]) })
	}
	return out
}

func keep(hs []domain.Hotel, pred func(domain.Hotel) bool) []domain.Hotel {
	out := hs[:0]
	for _, h := range hs {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}

// priceLess and priceGreater order by price; rows without a price sort after
// everything in either direction.
func priceLess(a, b domain.Hotel) bool {
	if a.Price == nil {
		return false
	}
	if b.Price == nil {
		return true
	}
	return *a.Price < *b.Price
}

func priceGreater(a, b domain.Hotel) bool {
	if a.Price == nil {
		return false
	}
	if b.Price == nil {
		return true
	}
	return *a.Price > *b.Price
}

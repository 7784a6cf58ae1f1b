package app

import (
	"sort"

	"hanoi_hotel/internal/domain"
	"hanoi_hotel/internal/storage/csvfile"
)

// Catalog is the in-memory hotel table: mapped once at startup, read-only
// afterwards.
type Catalog struct {
	hotels []domain.Hotel
}

func NewCatalog(t *csvfile.Table) *Catalog {
	c := &Catalog{hotels: make([]domain.Hotel, 0, len(t.Rows))}
	for _, r := range t.Rows {
		c.hotels = append(c.hotels, mapHotelRow(r))
	}
	return c
}

func (c *Catalog) Len() int { return len(c.hotels) }

// All returns the backing slice; callers must not mutate it. Filter copies.
func (c *Catalog) All() []domain.Hotel { return c.hotels }

// Cities returns the sorted distinct non-empty city names.
func (c *Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.hotels))
	var out []string
	for _, h := range c.hotels {
		if h.City == "" {
			continue
		}
		if _, ok := seen[h.City]; ok {
			continue
		}
		seen[h.City] = struct{}{}
		out = append(out, h.City)
	}
	sort.Strings(out)
	return out
}

// Find looks a hotel up by exact name.
func (c *Catalog) Find(name string) (domain.Hotel, bool) {
	for _, h := range c.hotels {
		if h.Name == name {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

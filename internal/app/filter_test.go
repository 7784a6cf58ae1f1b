package app_test

import (
	"testing"

	"hanoi_hotel/internal/app"
	"hanoi_hotel/internal/domain"
)

func hotel(name, city string, price float64, stars float64) domain.Hotel {
	return domain.Hotel{Name: name, City: city, Price: ptr(price), Stars: ptr(stars)}
}

func sample() []domain.Hotel {
	a := hotel("Ocean View", "Hanoi", 1200, 5)
	a.Pool = true
	a.SeaView = true
	b := hotel("River Inn", "Hue", 300, 3)
	b.Buffet = true
	c := hotel("City Stay", "hanoi", 800, 4)
	c.Pool = true
	return []domain.Hotel{a, b, c}
}

func names(hs []domain.Hotel) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name
	}
	return out
}

func TestFilter_CityCaseInsensitive(t *testing.T) {
	upper := app.Filter(sample(), app.Criteria{City: "Hanoi"})
	lower := app.Filter(sample(), app.Criteria{City: "hanoi"})
	if len(upper) != 2 || len(lower) != 2 {
		t.Fatalf("city filter sizes: %d / %d, want 2", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].Name != lower[i].Name {
			t.Fatalf("Hanoi vs hanoi diverge: %v vs %v", names(upper), names(lower))
		}
	}
}

func TestFilter_Budget(t *testing.T) {
	got := app.Filter(sample(), app.Criteria{Budget: "900"})
	for _, h := range got {
		if *h.Price > 900 {
			t.Fatalf("budget filter kept %s at %v", h.Name, *h.Price)
		}
	}
	if len(got) != 2 {
		t.Fatalf("budget 900: got %v", names(got))
	}

	// malformed budget is a no-op, not an error
	all := app.Filter(sample(), app.Criteria{Budget: "cheap"})
	if len(all) != 3 {
		t.Fatalf("malformed budget should keep the set unchanged, got %v", names(all))
	}
}

func TestFilter_StarsFloor(t *testing.T) {
	got := app.Filter(sample(), app.Criteria{Stars: "4"})
	if len(got) != 2 {
		t.Fatalf("stars >= 4: got %v", names(got))
	}
	if got := app.Filter(sample(), app.Criteria{Stars: "4.5"}); len(got) != 3 {
		// non-integer star input is ignored like any malformed value
		t.Fatalf("malformed stars should keep the set unchanged, got %v", names(got))
	}
}

func TestFilter_Amenities(t *testing.T) {
	if got := app.Filter(sample(), app.Criteria{Pool: true}); len(got) != 2 {
		t.Fatalf("pool: got %v", names(got))
	}
	if got := app.Filter(sample(), app.Criteria{Sea: true}); len(got) != 1 || got[0].Name != "Ocean View" {
		t.Fatalf("sea: got %v", names(got))
	}
	if got := app.Filter(sample(), app.Criteria{Buffet: true, Pool: true}); len(got) != 0 {
		t.Fatalf("buffet+pool: got %v", names(got))
	}
}

func TestFilter_SortAscReversedEqualsDesc(t *testing.T) {
	asc := app.Filter(sample(), app.Criteria{Sort: "asc"})
	desc := app.Filter(sample(), app.Criteria{Sort: "desc"})
	if len(asc) != len(desc) {
		t.Fatalf("sizes differ")
	}
	for i := range asc {
		if asc[i].Name != desc[len(desc)-1-i].Name {
			t.Fatalf("asc %v is not the reverse of desc %v", names(asc), names(desc))
		}
	}
	// unknown sort keeps load order
	plain := app.Filter(sample(), app.Criteria{Sort: "price"})
	if plain[0].Name != "Ocean View" || plain[2].Name != "City Stay" {
		t.Fatalf("unknown sort reordered: %v", names(plain))
	}
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	src := sample()
	_ = app.Filter(src, app.Criteria{City: "Hue", Sort: "desc"})
	if src[0].Name != "Ocean View" || src[1].Name != "River Inn" || src[2].Name != "City Stay" {
		t.Fatalf("source slice mutated: %v", names(src))
	}
}

func ptr[T any](v T) *T { return &v }

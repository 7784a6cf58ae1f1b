package app

import (
	"math"
	"regexp"
	"strings"

	"hanoi_hotel/internal/domain"
	"hanoi_hotel/internal/storage/csvfile"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// truthy cell values for amenity columns. Amenities are parsed to real
// booleans at load time so the amenity filters compare booleans, not strings.
var truthy = map[string]bool{"true": true, "1": true, "yes": true}

func parseBool(v string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(v))]
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func floatPtr(r csvfile.Row, col string) *float64 {
	if f, ok := r.Float(col); ok {
		return &f
	}
	return nil
}

// mapHotelRow turns one raw row into a display record. Absent fields degrade
// to defaults; the mapper never fails.
func mapHotelRow(r csvfile.Row) domain.Hotel {
	h := domain.Hotel{
		Name:   r.Str("name"),
		City:   r.Str("city"),
		Price:  floatPtr(r, "price"),
		Stars:  floatPtr(r, "stars"),
		Rating: floatPtr(r, "rating"),
		Buffet: parseBool(r.Str("buffet")),
		Pool:   parseBool(r.Str("pool")),
		View:   parseBool(r.Str("view")),
		Gym:    parseBool(r.Str("gym")),
		Spa:    parseBool(r.Str("spa")),
		Image:  firstNonEmpty(r.Str("image_url"), r.Str("image")),
	}

	// the sea column wins over sea_view when both exist
	if _, ok := r["sea"]; ok {
		h.SeaView = parseBool(r.Str("sea"))
	} else {
		h.SeaView = parseBool(r.Str("sea_view"))
	}

	h.FullDesc = firstNonEmpty(r.Str("review"), r.Str("description"))
	h.ShortDesc = shortDesc(h.FullDesc)
	return h
}

// shortDesc strips markup tags and truncates to 150 characters, appending an
// ellipsis only when something was cut.
func shortDesc(s string) string {
	clean := tagPattern.ReplaceAllString(s, "")
	rs := []rune(clean)
	if len(rs) > 150 {
		return string(rs[:150]) + "..."
	}
	return clean
}

func features(h domain.Hotel) map[string]bool {
	return map[string]bool{
		"buffet":   h.Buffet,
		"pool":     h.Pool,
		"sea_view": h.SeaView,
		"view":     h.View,
	}
}

func basePrice(h domain.Hotel) float64 {
	if h.Price != nil {
		return *h.Price
	}
	return 0
}

// detailRooms is the pricing table shown on the detail page: rounded, suite
// at 2.5x.
func detailRooms(base float64) []domain.RoomOption {
	return []domain.RoomOption{
		{Type: "Phòng nhỏ", Price: math.Round(base)},
		{Type: "Phòng đôi", Price: math.Round(base * 1.5)},
		{Type: "Phòng tổng thống", Price: math.Round(base * 2.5)},
	}
}

// selectionRooms is the pricing table on the room-selection page: raw prices,
// suite at 3x. The two tables differ in the source data and both are kept.
func selectionRooms(base float64) []domain.RoomOption {
	return []domain.RoomOption{
		{Type: "Phòng nhỏ", Price: base, Desc: "Phòng nhỏ gọn, tiện nghi, phù hợp 1 người."},
		{Type: "Phòng đôi", Price: base * 1.5, Desc: "Phòng đôi, view đẹp, phù hợp cặp đôi."},
		{Type: "Phòng tổng thống", Price: base * 3, Desc: "Phòng sang trọng, có hồ bơi riêng, dịch vụ cao cấp."},
	}
}

package domain

import "errors"

// ErrNotFound is returned when a hotel name has no matching record.
var ErrNotFound = errors.New("hotel: not found")

// Hotel is the display-ready record produced by the mapper from one raw
// row of the hotel file. Optional numerics stay nil when the cell is empty.
type Hotel struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Price     *float64 `json:"price,omitempty"`
	Stars     *float64 `json:"stars,omitempty"`
	Rating    *float64 `json:"rating,omitempty"` // static rating column, not review-derived
	Buffet    bool     `json:"buffet"`
	Pool      bool     `json:"pool"`
	SeaView   bool     `json:"sea_view"`
	View      bool     `json:"view"`
	Gym       bool     `json:"gym"`
	Spa       bool     `json:"spa"`
	Image     string   `json:"image,omitempty"`
	FullDesc  string   `json:"full_desc,omitempty"`  // raw markup retained
	ShortDesc string   `json:"short_desc,omitempty"` // tags stripped, 150 chars max
}

// RoomOption is one line in a room pricing table.
type RoomOption struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
	Desc  string  `json:"desc,omitempty"`
}

// HotelDetail is the detail-view payload: the hotel plus everything the
// template layer needs (features, rooms, reviews, computed average rating).
type HotelDetail struct {
	Hotel     Hotel           `json:"hotel"`
	Features  map[string]bool `json:"features"`
	Rooms     []RoomOption    `json:"rooms"`
	Reviews   []Review        `json:"reviews"`
	AvgRating *float64        `json:"avg_rating,omitempty"` // nil means "no rating yet"
}

// BookView is the room-selection payload.
type BookView struct {
	Hotel Hotel        `json:"hotel"`
	Rooms []RoomOption `json:"rooms"`
}

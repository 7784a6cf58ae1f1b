package domain

import "time"

type Booking struct {
	HotelName       string    `json:"hotel_name"`
	RoomType        string    `json:"room_type"`
	Price           float64   `json:"price"`
	UserName        string    `json:"user_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	NumAdults       int       `json:"num_adults"`
	NumChildren     int       `json:"num_children"`
	CheckinDate     string    `json:"checkin_date"`
	Nights          int       `json:"nights"`
	SpecialRequests string    `json:"special_requests"`
	BookingTime     time.Time `json:"booking_time"`
}

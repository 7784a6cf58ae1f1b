package domain

type Review struct {
	HotelName string `json:"hotel_name"`
	User      string `json:"user"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hanoi_hotel/internal/app"
	"hanoi_hotel/internal/domain"
)

type Handlers struct {
	Q          *app.QueryService
	C          *app.CommandService
	WriteRPS   int
	WriteBurst int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	throttle := WriteThrottle(h.WriteRPS, h.WriteBurst)

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.home)
	s.mux.Get("/about", h.about)
	s.mux.Get("/recommend", h.recommend)
	s.mux.Post("/recommend", h.recommend)
	s.mux.Get("/hotel/{name}", h.hotelDetail)
	s.mux.With(throttle).Post("/review/{name}", h.addReview)
	s.mux.Get("/book/{name}", h.bookPage)
	s.mux.Get("/booking/{name}/{room_type}", h.bookingForm)
	s.mux.With(throttle).Post("/booking/{name}/{room_type}", h.bookingSubmit)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// hotelName reads the {name} route param; names carry spaces and diacritics.
func hotelName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if dec, err := url.PathUnescape(name); err == nil {
		return dec
	}
	return name
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"cities": h.Q.Cities()})
}

func (h *Handlers) about(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "hanoi_hotel",
		"description": "Hotel browsing and booking over flat data files.",
	})
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	crit := app.Criteria{
		City:   qv.Get("location"),
		Budget: qv.Get("budget"),
		Stars:  qv.Get("stars"),
		// amenity flags and sort always come from the query string,
		// even on POST
		Buffet: qv.Get("buffet") != "",
		Pool:   qv.Get("pool") != "",
		Sea:    qv.Get("sea") != "",
		View:   qv.Get("view") != "",
		Sort:   qv.Get("sort"),
	}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			writeProblem(w, http.StatusBadRequest, "Bad Form", "unreadable form body")
			return
		}
		crit.City = r.PostFormValue("location")
		crit.Budget = r.PostFormValue("budget")
		crit.Stars = r.PostFormValue("stars")
	}

	hotels := h.Q.Recommend(crit)
	etag, body := calcETagAndBody(map[string]any{"hotels": hotels})
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write recommend body")
	}
}

func (h *Handlers) hotelDetail(w http.ResponseWriter, r *http.Request) {
	name := hotelName(r)
	d, err := h.Q.HotelDetail(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		log.Error().Err(err).Str("hotel", name).Msg("hotel detail failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not load hotel")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	name := hotelName(r)
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Form", "unreadable form body")
		return
	}
	// malformed rating defaults to 0 rather than erroring
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	if err := h.C.AddReview(r.Context(), name, r.PostFormValue("user"), rating, r.PostFormValue("comment")); err != nil {
		log.Error().Err(err).Str("hotel", name).Msg("append review failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not save review")
		return
	}
	http.Redirect(w, r, "/hotel/"+url.PathEscape(name), http.StatusSeeOther)
}

func (h *Handlers) bookPage(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.BookPage(hotelName(r))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) bookingForm(w http.ResponseWriter, r *http.Request) {
	name := hotelName(r)
	v, err := h.Q.BookPage(name)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	roomType := chi.URLParam(r, "room_type")
	if dec, derr := url.PathUnescape(roomType); derr == nil {
		roomType = dec
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotel": v.Hotel, "room_type": roomType})
}

func (h *Handlers) bookingSubmit(w http.ResponseWriter, r *http.Request) {
	name := hotelName(r)
	roomType := chi.URLParam(r, "room_type")
	if dec, err := url.PathUnescape(roomType); err == nil {
		roomType = dec
	}
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Form", "unreadable form body")
		return
	}
	in := app.BookingInput{
		HotelName:   name,
		RoomType:    roomType,
		Price:       r.PostFormValue("price"),
		FullName:    r.PostFormValue("fullname"),
		Phone:       r.PostFormValue("phone"),
		Email:       r.PostFormValue("email"),
		Adults:      r.PostFormValue("adults"),
		Children:    r.PostFormValue("children"),
		CheckinDate: r.PostFormValue("checkin"),
		Note:        r.PostFormValue("note"),
	}
	if in.FullName == "" || in.Phone == "" || in.CheckinDate == "" {
		writeProblem(w, http.StatusBadRequest, "Missing Fields", "fullname, phone and checkin are required")
		return
	}
	b, err := h.C.CreateBooking(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		log.Error().Err(err).Str("hotel", name).Msg("append booking failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not save booking")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"info": b})
}

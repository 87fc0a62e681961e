package http

import (
	"encoding/json"
	"net/http"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// SaveCarBooking handles POST /customers/saveCarBooking?carId=N&ownerId=N
// with a JSON body {bookingContent}.
func (h *BookingHandler) SaveCarBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req struct {
		BookingContent string `json:"bookingContent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	carID := parseInt32(r.URL.Query().Get("carId"))
	ownerID := parseInt32(r.URL.Query().Get("ownerId"))

	booking, err := h.bookingSvc.CreateBooking(r.Context(), claims.UserID, carID, ownerID, req.BookingContent)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Your booking has been sent to owner successfully!!",
		"carBooking": booking,
	})
}

// AcceptBooking handles PUT /owner/acceptCustomerPB with a JSON body
// {bookingId, carId, ownerReplyToCustomer}.
func (h *BookingHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req struct {
		BookingID            int32  `json:"bookingId"`
		CarID                int32  `json:"carId"`
		OwnerReplyToCustomer string `json:"ownerReplyToCustomer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	booking, err := h.bookingSvc.AcceptBooking(r.Context(), claims.UserID, req.BookingID, req.CarID, req.OwnerReplyToCustomer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Booking has been accepted successfully. The customer will be notified soon.",
		"booking": booking,
	})
}

// RejectBooking handles PUT /owner/rejectCustomerPB with a JSON body
// {bookingId, reasonforRejection}.
func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req struct {
		BookingID          int32  `json:"bookingId"`
		ReasonForRejection string `json:"reasonforRejection"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	booking, err := h.bookingSvc.RejectBooking(r.Context(), claims.UserID, req.BookingID, req.ReasonForRejection)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Booking has been rejected successfully.",
		"booking": booking,
	})
}

// Listing endpoints always answer 200 with a bookings array, empty when
// nothing matched.

func (h *BookingHandler) FetchPendingBookingsForOwner(w http.ResponseWriter, r *http.Request) {
	h.listForOwner(w, r, domain.BookingStatusPending)
}

func (h *BookingHandler) FetchCompletedBookingsForOwner(w http.ResponseWriter, r *http.Request) {
	h.listForOwner(w, r, domain.BookingStatusAccepted)
}

func (h *BookingHandler) listForOwner(w http.ResponseWriter, r *http.Request, status domain.BookingStatus) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookingSvc.ListForOwner(r.Context(), claims.UserID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// FetchCarPendingBookings handles GET /owner/fetchPendingcarBookings?carId=N.
func (h *BookingHandler) FetchCarPendingBookings(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	carID := parseInt32(r.URL.Query().Get("carId"))
	if carID <= 0 {
		writeError(w, domain.NewValidationError("invalid or missing carId parameter"))
		return
	}

	bookings, err := h.bookingSvc.ListForCar(r.Context(), claims.UserID, carID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// FetchPendingBookingsForOtherCars handles
// GET /owner/fetchPendingBookingsForOtherCars?carId=N.
func (h *BookingHandler) FetchPendingBookingsForOtherCars(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	carID := parseInt32(r.URL.Query().Get("carId"))
	bookings, err := h.bookingSvc.ListForOtherCars(r.Context(), claims.UserID, carID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *BookingHandler) FetchPendingBookingsForCustomer(w http.ResponseWriter, r *http.Request) {
	h.listForCustomer(w, r, domain.BookingStatusPending)
}

func (h *BookingHandler) FetchAcceptedBookingsForCustomer(w http.ResponseWriter, r *http.Request) {
	h.listForCustomer(w, r, domain.BookingStatusAccepted)
}

func (h *BookingHandler) FetchRejectedBookingsForCustomer(w http.ResponseWriter, r *http.Request) {
	h.listForCustomer(w, r, domain.BookingStatusRejected)
}

func (h *BookingHandler) listForCustomer(w http.ResponseWriter, r *http.Request, status domain.BookingStatus) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookingSvc.ListForCustomer(r.Context(), claims.UserID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

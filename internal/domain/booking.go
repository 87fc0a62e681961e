package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusAccepted BookingStatus = "Accepted"
	BookingStatusRejected BookingStatus = "Rejected"
)

const (
	// MinBookingText and MaxBookingText bound the customer's request message.
	MinBookingText = 10
	MaxBookingText = 500
	// MinOwnerReply is the minimum length of an accept reply or rejection reason.
	MinOwnerReply = 5
	// BookingExpiry is how long a pending booking stays open.
	BookingExpiry = 7 * 24 * time.Hour
)

type Booking struct {
	ID             int32         `json:"id"`
	CustomerID     int32         `json:"customerId"`
	CarID          int32         `json:"carId"`
	OwnerID        int32         `json:"ownerId"`
	BookingText    string        `json:"bookingText"`
	Status         BookingStatus `json:"bookingStatus"`
	BookingDate    time.Time     `json:"bookingDate"`
	ExpiryDate     time.Time     `json:"expiryDate"`
	OwnerReply     string        `json:"ownerReplyToBooking,omitempty"`
	OwnerReplyDate *time.Time    `json:"ownerReplyToBookingDate,omitempty"`
}

// BookingDetails is a booking enriched with display fields joined from the
// customer, owner and car records. Listings return these instead of raw
// bookings so the client does not have to chase ids.
type BookingDetails struct {
	Booking
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPFP   string   `json:"customerPFP"`
	OwnerName     string   `json:"ownerName"`
	OwnerEmail    string   `json:"ownerEmail"`
	OwnerPFP      string   `json:"ownerPFP"`
	CarName       string   `json:"carName,omitempty"`
	CarImages     []string `json:"carPFP,omitempty"`
	CarPrice      int64    `json:"carPrice,omitempty"`
	CarCount      int32    `json:"carCount,omitempty"`
}

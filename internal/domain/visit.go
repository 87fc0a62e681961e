package domain

import "time"

// MaxRecentVisits caps the per-customer visit history; older entries are
// evicted when a new showroom is visited.
const MaxRecentVisits = 5

// ShowroomVisit is one entry in a customer's recently-visited history.
type ShowroomVisit struct {
	CustomerID int32     `json:"customerId"`
	OwnerID    int32     `json:"ownerId"`
	VisitedAt  time.Time `json:"visitedAt"`
}

// VisitedShowroom is a visit resolved to the owner's public profile.
type VisitedShowroom struct {
	OwnerID    int32           `json:"ownerId"`
	VisitedAt  time.Time       `json:"visitedAt"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	ProfilePic string          `json:"profilePic"`
	Showroom   ShowroomDetails `json:"showroomDetails"`
}

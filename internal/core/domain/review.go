package domain

import "time"

// Review is a customer rating and comment attached to a vehicle.
// ReviewerFirst/ReviewerLast are populated on reads that join the
// account table; they are not stored on the review row itself.
type Review struct {
	ID            int
	VehicleID     int
	AccountID     int
	Rating        int
	Comment       string
	CreatedAt     time.Time
	ReviewerFirst string
	ReviewerLast  string
}

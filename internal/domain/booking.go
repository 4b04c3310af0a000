package domain

import (
	"time"

	"github.com/m04kA/SMC-WashDashboard/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusActive    BookingStatus = "ACTIVE"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// transitions lists the only legal next state for every non-terminal status.
// PENDING has two exits: ACCEPTED and CANCELLED.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusActive},
	StatusActive:   {StatusCompleted},
}

// IsValid returns true if the status is one of the known lifecycle states
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for COMPLETED and CANCELLED
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsCurrent returns true for bookings counted in the "current" bucket (ACCEPTED or ACTIVE)
func (s BookingStatus) IsCurrent() bool {
	return s == StatusAccepted || s == StatusActive
}

// CanTransitionTo reports whether moving from s to next is a legal single step
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a single car-wash appointment
type Booking struct {
	ID           string
	CustomerName string
	Phone        string
	Email        string
	ServiceType  string
	Date         string           // YYYY-MM-DD
	Time         types.TimeString // slot label, HH:MM
	Location     string
	Price        int
	Status       BookingStatus

	CreatedAt time.Time
}

// BookingDetails contains the customer-provided part of a submission
type BookingDetails struct {
	CustomerName string
	Phone        string
	Email        string
	Date         string
	Time         types.TimeString
	Location     string
}

// BookingFilter selects bookings by status and free-text search.
// Nil Status and empty SearchTerm match everything.
type BookingFilter struct {
	Status     *BookingStatus
	SearchTerm string
}

// IsEmpty returns true if the filter matches every booking
func (f BookingFilter) IsEmpty() bool {
	return f.Status == nil && f.SearchTerm == ""
}

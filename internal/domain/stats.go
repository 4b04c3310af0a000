package domain

// AggregateStats are counters derived from a booking set.
// CurrentBookings covers both ACCEPTED and ACTIVE.
type AggregateStats struct {
	PendingBookings   int
	CurrentBookings   int
	CompletedBookings int
	CancelledBookings int
	TotalEarnings     int
}

// ComputeStats counts bookings per bucket from scratch
func ComputeStats(bookings []Booking) AggregateStats {
	var st AggregateStats
	for _, b := range bookings {
		switch {
		case b.Status == StatusPending:
			st.PendingBookings++
		case b.Status.IsCurrent():
			st.CurrentBookings++
		case b.Status == StatusCompleted:
			st.CompletedBookings++
			st.TotalEarnings += b.Price
		case b.Status == StatusCancelled:
			st.CancelledBookings++
		}
	}
	return st
}

// Total returns the number of bookings covered by the four buckets
func (s AggregateStats) Total() int {
	return s.PendingBookings + s.CurrentBookings + s.CompletedBookings + s.CancelledBookings
}

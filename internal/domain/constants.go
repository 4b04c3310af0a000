package domain

import "time"

// Scheduling defaults
const (
	DefaultWindowDays = 30 // bookable days after today
	GridSize          = 42 // 6 weeks
	DaysInWeek        = 7
)

// Timers
const (
	DefaultToastTTL            = 5000 * time.Millisecond
	DefaultSimulationInterval  = 30 * time.Second
	SimulationArrivalThreshold = 0.7 // arrival happens when sample > threshold
)

// Invoice
const (
	TaxRatePercent = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeSlots fixed ordered catalog of one-hour slot labels, starting at 08:00
// and wrapping through midnight
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
	"20:00", "21:00", "22:00", "23:00", "00:00", "01:00",
	"02:00", "03:00", "04:00", "05:00", "06:00", "07:00",
}

// IsTimeSlot returns true if label is in the slot catalog
func IsTimeSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// AllStatuses in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

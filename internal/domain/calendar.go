package domain

// CalendarDay is one cell of the 42-cell month grid
type CalendarDay struct {
	Date         int    // day of month
	FullDate     string // YYYY-MM-DD
	CurrentMonth bool
	Disabled     bool
	Selected     bool
}

package select_date

// SelectDateRequest выбор даты в календаре
type SelectDateRequest struct {
	Date string `json:"date"` // "2024-01-15"
}

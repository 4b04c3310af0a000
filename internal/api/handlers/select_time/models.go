package select_time

// SelectTimeRequest выбор слота
type SelectTimeRequest struct {
	Time string `json:"time"` // "10:00"
}

package calendar

import "github.com/m04kA/SMC-WashDashboard/internal/domain"

// TimeSlots возвращает копию каталога слотов
func TimeSlots() []string {
	slots := make([]string, len(domain.TimeSlots))
	copy(slots, domain.TimeSlots)
	return slots
}

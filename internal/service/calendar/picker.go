package calendar

import (
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/types"
)

// State снимок состояния выбора даты и времени
type State struct {
	Month        time.Time // первое число просматриваемого месяца
	Days         []domain.CalendarDay
	SelectedDate string
	SelectedTime types.TimeString
}

// Picker выбор даты и слота для формы бронирования
// Не потокобезопасен: вызывающая сторона сериализует доступ
type Picker struct {
	timeProvider TimeProvider
	windowDays   int
	logger       Logger

	month        time.Time
	days         []domain.CalendarDay
	selectedDate string
	selectedTime types.TimeString
}

// NewPicker создает выбор даты, открытый на текущем месяце
func NewPicker(timeProvider TimeProvider, windowDays int, logger Logger) *Picker {
	if windowDays <= 0 {
		windowDays = domain.DefaultWindowDays
	}

	p := &Picker{
		timeProvider: timeProvider,
		windowDays:   windowDays,
		logger:       logger,
		month:        monthStart(timeProvider.Now()),
	}
	p.regenerate()

	return p
}

// State возвращает копию текущего состояния
func (p *Picker) State() State {
	days := make([]domain.CalendarDay, len(p.days))
	copy(days, p.days)

	return State{
		Month:        p.month,
		Days:         days,
		SelectedDate: p.selectedDate,
		SelectedTime: p.selectedTime,
	}
}

// SelectedDate выбранная дата бронирования (пустая строка, если не выбрана)
func (p *Picker) SelectedDate() string {
	return p.selectedDate
}

// SelectedTime выбранный слот (пустая строка, если не выбран)
func (p *Picker) SelectedTime() types.TimeString {
	return p.selectedTime
}

// SelectDay выбирает день в видимой сетке
// Ничего не делает для недоступного дня, дня из соседнего месяца или даты вне сетки
// Возвращает true, если день выбран
func (p *Picker) SelectDay(fullDate string) bool {
	idx := -1
	for i := range p.days {
		if p.days[i].FullDate == fullDate {
			idx = i
			break
		}
	}

	if idx < 0 {
		p.logger.Warn("SelectDay: date=%s is not in the visible grid", fullDate)
		return false
	}

	day := p.days[idx]
	if day.Disabled || !day.CurrentMonth {
		p.logger.Warn("SelectDay: date=%s is not selectable (disabled=%t, currentMonth=%t)",
			fullDate, day.Disabled, day.CurrentMonth)
		return false
	}

	for i := range p.days {
		p.days[i].Selected = i == idx
	}
	p.selectedDate = fullDate

	p.logger.Info("SelectDay: selected date=%s", fullDate)
	return true
}

// PreviousMonth переключает сетку на предыдущий месяц, сохраняя выбор
func (p *Picker) PreviousMonth() {
	p.month = p.month.AddDate(0, -1, 0)
	p.regenerate()
}

// NextMonth переключает сетку на следующий месяц, сохраняя выбор
func (p *Picker) NextMonth() {
	p.month = p.month.AddDate(0, 1, 0)
	p.regenerate()
}

// Refresh пересчитывает окно бронирования относительно текущей даты
// Если выбранная дата вышла из окна, выбор сбрасывается
func (p *Picker) Refresh() {
	if p.selectedDate != "" {
		if d, err := ParseDate(p.selectedDate); err == nil && !IsBookable(d, p.timeProvider.Now(), p.windowDays) {
			p.logger.Info("Refresh: selected date=%s left the booking window", p.selectedDate)
			p.selectedDate = ""
		}
	}
	p.regenerate()
}

// SelectTimeSlot запоминает слот из каталога
// Метка вне каталога игнорируется, занятость слотов не проверяется
func (p *Picker) SelectTimeSlot(label string) bool {
	if !domain.IsTimeSlot(label) {
		p.logger.Warn("SelectTimeSlot: unknown slot=%q", label)
		return false
	}

	p.selectedTime = types.TimeString(label)
	p.logger.Info("SelectTimeSlot: selected slot=%s", label)
	return true
}

// Reset сбрасывает выбранные дату и время (закрытие формы)
func (p *Picker) Reset() {
	p.selectedDate = ""
	p.selectedTime = ""
	for i := range p.days {
		p.days[i].Selected = false
	}
}

func (p *Picker) regenerate() {
	p.days = GenerateGrid(p.month, p.timeProvider.Now(), p.windowDays, p.selectedDate)
}

package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Engine набор бронирований одного дашборда и его агрегированные счетчики
// Не потокобезопасен: все вызовы сериализуются очередью дашборда
type Engine struct {
	bookings     []domain.Booking // самые новые первыми
	stats        domain.AggregateStats
	ids          idGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewEngine создает пустой движок бронирований
func NewEngine(timeProvider TimeProvider, logger Logger) *Engine {
	return &Engine{
		bookings:     make([]domain.Booking, 0),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Seed заменяет набор демо-данными и пересчитывает статистику
// Порядок сохраняется как есть: первый элемент считается самым новым
func (e *Engine) Seed(bookings []domain.Booking) error {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.ID == "" {
			return fmt.Errorf("%w: Seed - empty booking id", ErrInvalidSeed)
		}
		if _, ok := seen[b.ID]; ok {
			return fmt.Errorf("%w: Seed - duplicate booking id %s", ErrInvalidSeed, b.ID)
		}
		if !b.Status.IsValid() {
			return fmt.Errorf("%w: Seed - booking %s has unknown status %q", ErrInvalidSeed, b.ID, b.Status)
		}
		seen[b.ID] = struct{}{}
	}

	e.bookings = make([]domain.Booking, len(bookings))
	copy(e.bookings, bookings)
	e.stats = domain.ComputeStats(e.bookings)

	e.logger.Info("Seed: loaded %d bookings, pending=%d, current=%d, completed=%d, cancelled=%d",
		len(e.bookings), e.stats.PendingBookings, e.stats.CurrentBookings,
		e.stats.CompletedBookings, e.stats.CancelledBookings)
	return nil
}

// Submit создает бронирование в статусе PENDING и добавляет его в начало набора
// Данные не перепроверяются: валидация выполняется на границе
func (e *Engine) Submit(service domain.Service, details domain.BookingDetails) domain.Booking {
	b := domain.Booking{
		ID:           e.ids.generate(e.exists),
		CustomerName: details.CustomerName,
		Phone:        details.Phone,
		Email:        details.Email,
		ServiceType:  service.Name,
		Date:         details.Date,
		Time:         details.Time,
		Location:     details.Location,
		Price:        service.Price,
		Status:       domain.StatusPending,
		CreatedAt:    e.timeProvider.Now(),
	}

	e.bookings = append([]domain.Booking{b}, e.bookings...)
	e.stats.PendingBookings++

	e.logger.Info("Submit: booking id=%s created, service=%s, date=%s, time=%s",
		b.ID, b.ServiceType, b.Date, b.Time)
	return b
}

// Accept переводит PENDING -> ACCEPTED
func (e *Engine) Accept(id string) (domain.Booking, bool, error) {
	return e.transition("Accept", id, domain.StatusPending, domain.StatusAccepted)
}

// Reject переводит PENDING -> CANCELLED
func (e *Engine) Reject(id string) (domain.Booking, bool, error) {
	return e.transition("Reject", id, domain.StatusPending, domain.StatusCancelled)
}

// Start переводит ACCEPTED -> ACTIVE
func (e *Engine) Start(id string) (domain.Booking, bool, error) {
	return e.transition("Start", id, domain.StatusAccepted, domain.StatusActive)
}

// Complete переводит ACTIVE -> COMPLETED и добавляет цену к выручке
func (e *Engine) Complete(id string) (domain.Booking, bool, error) {
	return e.transition("Complete", id, domain.StatusActive, domain.StatusCompleted)
}

// Get возвращает копию бронирования по ID
func (e *Engine) Get(id string) (domain.Booking, error) {
	idx := e.indexOf(id)
	if idx < 0 {
		return domain.Booking{}, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}
	return e.bookings[idx], nil
}

// List возвращает копию набора (самые новые первыми)
func (e *Engine) List() []domain.Booking {
	result := make([]domain.Booking, len(e.bookings))
	copy(result, e.bookings)
	return result
}

// Filter применяет фильтр к текущему набору
func (e *Engine) Filter(filter domain.BookingFilter) []domain.Booking {
	return Filter(e.bookings, filter)
}

// Stats возвращает агрегированные счетчики
func (e *Engine) Stats() domain.AggregateStats {
	return e.stats
}

// Count возвращает количество бронирований
func (e *Engine) Count() int {
	return len(e.bookings)
}

// transition применяет переход from -> to
// Неверный исходный статус не ошибка: переход пропускается (applied=false), статистика не меняется
func (e *Engine) transition(op, id string, from, to domain.BookingStatus) (domain.Booking, bool, error) {
	idx := e.indexOf(id)
	if idx < 0 {
		e.logger.Warn("%s: booking id=%s not found", op, id)
		return domain.Booking{}, false, fmt.Errorf("%w: %s - id=%s", ErrBookingNotFound, op, id)
	}

	b := &e.bookings[idx]
	if b.Status != from || !from.CanTransitionTo(to) {
		e.logger.Info("%s: booking id=%s skipped, status=%s", op, id, b.Status)
		return *b, false, nil
	}

	adjust(&e.stats, b.Status, -1, b.Price)
	adjust(&e.stats, to, +1, b.Price)
	b.Status = to

	e.logger.Info("%s: booking id=%s moved %s -> %s", op, id, from, to)
	return *b, true, nil
}

// adjust сдвигает счетчик корзины статуса на delta
// Выручка меняется только вместе с корзиной COMPLETED
func adjust(st *domain.AggregateStats, status domain.BookingStatus, delta, price int) {
	switch {
	case status == domain.StatusPending:
		st.PendingBookings += delta
	case status.IsCurrent():
		st.CurrentBookings += delta
	case status == domain.StatusCompleted:
		st.CompletedBookings += delta
		st.TotalEarnings += delta * price
	case status == domain.StatusCancelled:
		st.CancelledBookings += delta
	}
}

func (e *Engine) indexOf(id string) int {
	for i := range e.bookings {
		if e.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) exists(id string) bool {
	return e.indexOf(id) >= 0
}

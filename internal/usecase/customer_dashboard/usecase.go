package customer_dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-WashDashboard/internal/service/calendar"
	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
	"github.com/m04kA/SMC-WashDashboard/pkg/txmanager"
)

// DashboardName метка дашборда в метриках и логах
const DashboardName = "customer"

// Dashboard дашборд клиента: каталог, выбор даты и слота, свои бронирования
// Движок и календарь однопоточные, все обращения к ним идут через очередь txManager
type Dashboard struct {
	owner        domain.User
	session      SessionContext
	engine       *bookings.Engine
	picker       *calendar.Picker
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
	windowDays   int

	lastBookingID string
}

// NewDashboard создает дашборд клиента и загружает демо-бронирования
// Пустые имя и email в демо-данных заполняются данными владельца
func NewDashboard(
	owner domain.User,
	session SessionContext,
	seed []domain.Booking,
	cfg Config,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) (*Dashboard, error) {
	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = domain.DefaultWindowDays
	}

	d := &Dashboard{
		owner:        owner,
		session:      session,
		engine:       bookings.NewEngine(timeProvider, logger),
		picker:       calendar.NewPicker(timeProvider, windowDays, logger),
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		windowDays:   windowDays,
	}

	owned := make([]domain.Booking, len(seed))
	for i, b := range seed {
		if b.CustomerName == "" {
			b.CustomerName = owner.Name
		}
		if b.Email == "" {
			b.Email = owner.Email
		}
		owned[i] = b
	}

	if err := d.engine.Seed(owned); err != nil {
		return nil, fmt.Errorf("%w: NewDashboard - seed: %v", ErrInternal, err)
	}

	logger.Info("NewDashboard: customer dashboard opened for email=%s with %d bookings", owner.Email, len(owned))
	return d, nil
}

// Services возвращает каталог услуг; каталог общий для всех дашбордов
func Services() []ServiceResponse {
	return FromDomainServices(domain.Catalog)
}

// Calendar возвращает текущее состояние календаря
func (d *Dashboard) Calendar(ctx context.Context) (*CalendarResponse, error) {
	var resp *CalendarResponse
	err := d.read(ctx, func(ctx context.Context) error {
		resp = d.calendarState(true)
		return nil
	})
	return resp, err
}

// PreviousMonth переключает календарь на предыдущий месяц
func (d *Dashboard) PreviousMonth(ctx context.Context) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		d.picker.PreviousMonth()
		return true
	})
}

// NextMonth переключает календарь на следующий месяц
func (d *Dashboard) NextMonth(ctx context.Context) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		d.picker.NextMonth()
		return true
	})
}

// Refresh пересчитывает окно бронирования относительно текущей даты
func (d *Dashboard) Refresh(ctx context.Context) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		d.picker.Refresh()
		return true
	})
}

// SelectDate выбирает дату; недоступная дата игнорируется (Applied=false)
func (d *Dashboard) SelectDate(ctx context.Context, fullDate string) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		return d.picker.SelectDay(fullDate)
	})
}

// SelectTime выбирает слот; метка вне каталога игнорируется (Applied=false)
func (d *Dashboard) SelectTime(ctx context.Context, label string) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		return d.picker.SelectTimeSlot(label)
	})
}

// ResetSelection сбрасывает выбор даты и времени (закрытие формы)
func (d *Dashboard) ResetSelection(ctx context.Context) (*CalendarResponse, error) {
	return d.mutateCalendar(ctx, func() bool {
		d.picker.Reset()
		return true
	})
}

// Submit создает бронирование из выбора в календаре и данных формы
// Валидация выполняется здесь, движок принимает только проверенные данные
func (d *Dashboard) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	d.logger.Info("Submit: email=%s, service=%s, date=%s, time=%s", d.owner.Email, req.ServiceType, req.Date, req.Time)

	var resp *SubmitResponse
	err := d.do(ctx, func(ctx context.Context) error {
		date := req.Date
		if date == "" {
			date = d.picker.SelectedDate()
		}
		slot := req.Time
		if slot == "" {
			slot = d.picker.SelectedTime().String()
		}

		valid, err := validateSubmit(req, date, slot, d.timeProvider.Now(), d.windowDays)
		if err != nil {
			d.logger.Warn("Submit: validation failed: %v", err)
			return err
		}

		user, err := d.session.CurrentUser(ctx)
		if err != nil {
			d.logger.Warn("Submit: current user unavailable: %v", err)
			return fmt.Errorf("%w: %v", ErrSession, err)
		}

		booking := d.engine.Submit(valid.service, domain.BookingDetails{
			CustomerName: user.Name,
			Phone:        req.Phone,
			Email:        user.Email,
			Date:         valid.date,
			Time:         valid.time,
			Location:     req.Address,
		})

		d.lastBookingID = booking.ID
		d.picker.Reset()
		d.metrics.BookingSubmitted(DashboardName, booking.ServiceType)

		resp = &SubmitResponse{
			Booking:       models.FromDomainBooking(booking),
			LastBookingID: booking.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.logger.Info("Submit: booking id=%s created for email=%s", resp.Booking.ID, d.owner.Email)
	return resp, nil
}

// Bookings возвращает бронирования клиента с фильтрацией по статусу и поиску
func (d *Dashboard) Bookings(ctx context.Context, req *models.FilterRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var resp *models.BookingListResponse
	err = d.read(ctx, func(ctx context.Context) error {
		resp = models.FromDomainBookingList(d.engine.Filter(filter))
		return nil
	})
	return resp, err
}

// Stats возвращает агрегированную статистику клиента
func (d *Dashboard) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var resp models.StatsResponse
	err := d.read(ctx, func(ctx context.Context) error {
		resp = models.FromDomainStats(d.engine.Stats())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// LastBookingID ID последнего созданного бронирования (пустой, если не было)
func (d *Dashboard) LastBookingID(ctx context.Context) (string, error) {
	var id string
	err := d.read(ctx, func(ctx context.Context) error {
		id = d.lastBookingID
		return nil
	})
	return id, err
}

// Receipt формирует квитанцию по бронированию
func (d *Dashboard) Receipt(ctx context.Context, bookingID string) (*reports.Document, error) {
	var doc *reports.Document
	err := d.read(ctx, func(ctx context.Context) error {
		b, err := d.engine.Get(bookingID)
		if err != nil {
			if errors.Is(err, bookings.ErrBookingNotFound) {
				d.logger.Warn("Receipt: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Receipt - %v", ErrInternal, err)
		}

		doc = reports.TextDocument(reports.ReceiptFilename(b.ID), reports.RenderReceipt(b))
		return nil
	})
	return doc, err
}

// Close останавливает очередь дашборда
func (d *Dashboard) Close() {
	d.txManager.Close()
	d.logger.Info("Close: customer dashboard closed for email=%s", d.owner.Email)
}

func (d *Dashboard) mutateCalendar(ctx context.Context, fn func() bool) (*CalendarResponse, error) {
	var resp *CalendarResponse
	err := d.do(ctx, func(ctx context.Context) error {
		resp = d.calendarState(fn())
		return nil
	})
	return resp, err
}

func (d *Dashboard) calendarState(applied bool) *CalendarResponse {
	today := d.timeProvider.Now()
	return FromCalendarState(
		d.picker.State(),
		today.Format(domain.DateFormat),
		today.AddDate(0, 0, d.windowDays).Format(domain.DateFormat),
		applied,
	)
}

// do выполняет мутацию в очереди дашборда
func (d *Dashboard) do(ctx context.Context, fn func(ctx context.Context) error) error {
	return closedErr(d.txManager.DoSerializable(ctx, fn))
}

// read выполняет чтение состояния дашборда
func (d *Dashboard) read(ctx context.Context, fn func(ctx context.Context) error) error {
	return closedErr(d.txManager.DoReadOnly(ctx, fn))
}

func closedErr(err error) error {
	if errors.Is(err, txmanager.ErrClosed) {
		return ErrClosed
	}
	return err
}

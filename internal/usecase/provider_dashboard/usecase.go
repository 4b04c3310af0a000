package provider_dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-WashDashboard/internal/service/notifications"
	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
	"github.com/m04kA/SMC-WashDashboard/pkg/txmanager"
)

// DashboardName метка дашборда в метриках и логах
const DashboardName = "provider"

const (
	iconBell        = "fas fa-bell"
	iconCheck       = "fas fa-check"
	iconTimes       = "fas fa-times"
	iconPlay        = "fas fa-play"
	iconCheckCircle = "fas fa-check-circle"
	iconInvoice     = "fas fa-file-invoice"
	iconChart       = "fas fa-chart-line"
)

// Dashboard дашборд провайдера: входящие бронирования, переходы статусов,
// уведомления, счета и отчеты
// Движок и уведомления однопоточные, все обращения к ним идут через очередь txManager
type Dashboard struct {
	owner     domain.User
	session   SessionContext
	engine    *bookings.Engine
	toasts    *notifications.Service
	txManager TransactionManager
	clock     Clock
	random    RandomSource
	metrics   Metrics
	logger    Logger
	cfg       Config

	feed   []FeedEntry
	unread int

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDashboard создает дашборд провайдера, загружает демо-данные
// и, если включено, запускает симуляцию входящих бронирований
func NewDashboard(
	owner domain.User,
	session SessionContext,
	seed []domain.Booking,
	feed []FeedEntry,
	cfg Config,
	txManager TransactionManager,
	clk Clock,
	random RandomSource,
	metrics Metrics,
	logger Logger,
) (*Dashboard, error) {
	if cfg.SimulationInterval <= 0 {
		cfg.SimulationInterval = domain.DefaultSimulationInterval
	}
	if cfg.ToastTTL <= 0 {
		cfg.ToastTTL = domain.DefaultToastTTL
	}

	d := &Dashboard{
		owner:     owner,
		session:   session,
		engine:    bookings.NewEngine(clk, logger),
		toasts:    notifications.NewService(clk, txManager, metrics, cfg.ToastTTL, logger),
		txManager: txManager,
		clock:     clk,
		random:    random,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		feed:      append([]FeedEntry(nil), feed...),
		unread:    len(feed),
		stop:      make(chan struct{}),
	}

	if err := d.engine.Seed(seed); err != nil {
		return nil, fmt.Errorf("%w: NewDashboard - seed: %v", ErrInternal, err)
	}

	if cfg.SimulationEnabled {
		d.startSimulation()
	}

	logger.Info("NewDashboard: provider dashboard opened for email=%s with %d bookings", owner.Email, len(seed))
	return d, nil
}

// Bookings возвращает бронирования с фильтрацией по статусу и поиску
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

// Booking возвращает бронирование по ID
func (d *Dashboard) Booking(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	var resp models.BookingResponse
	err := d.read(ctx, func(ctx context.Context) error {
		b, err := d.get(bookingID)
		if err != nil {
			return err
		}
		resp = models.FromDomainBooking(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Transition применяет действие к бронированию
// Действие из неподходящего статуса пропускается без ошибки (Applied=false)
func (d *Dashboard) Transition(ctx context.Context, bookingID string, action Action) (*models.TransitionResponse, error) {
	var resp *models.TransitionResponse
	err := d.do(ctx, func(ctx context.Context) error {
		var (
			before domain.Booking
			after  domain.Booking
			ok     bool
			err    error
		)

		before, err = d.get(bookingID)
		if err != nil {
			return err
		}

		switch action {
		case ActionAccept:
			after, ok, err = d.engine.Accept(bookingID)
		case ActionReject:
			after, ok, err = d.engine.Reject(bookingID)
		case ActionStart:
			after, ok, err = d.engine.Start(bookingID)
		case ActionComplete:
			after, ok, err = d.engine.Complete(bookingID)
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAction, action)
		}
		if err != nil {
			return fmt.Errorf("%w: Transition - %v", ErrInternal, err)
		}

		if ok {
			d.metrics.BookingTransition(DashboardName, string(before.Status), string(after.Status))
			d.showTransitionToast(action, after)
		}

		resp = &models.TransitionResponse{
			Booking: models.FromDomainBooking(after),
			Applied: ok,
			Stats:   models.FromDomainStats(d.engine.Stats()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.logger.Info("Transition: booking id=%s action=%s applied=%t", bookingID, action, resp.Applied)
	return resp, nil
}

// SimulateBooking добавляет тестовое бронирование вручную
func (d *Dashboard) SimulateBooking(ctx context.Context) (*models.BookingResponse, error) {
	var resp models.BookingResponse
	err := d.do(ctx, func(ctx context.Context) error {
		b := d.addArrival()
		d.toasts.Show("Test booking created successfully", domain.ToastSuccess, iconCheck)
		resp = models.FromDomainBooking(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats возвращает агрегированную статистику
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

// Overview шапка дашборда: текущий пользователь, статистика и счетчик непрочитанных
func (d *Dashboard) Overview(ctx context.Context) (*OverviewResponse, error) {
	user, err := d.session.CurrentUser(ctx)
	if err != nil {
		d.logger.Warn("Overview: current user unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSession, err)
	}

	resp := &OverviewResponse{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
	err = d.read(ctx, func(ctx context.Context) error {
		resp.Stats = models.FromDomainStats(d.engine.Stats())
		resp.TotalBookings = d.engine.Count()
		resp.UnreadCount = d.unread
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Invoice формирует счет по бронированию
func (d *Dashboard) Invoice(ctx context.Context, bookingID string) (*reports.Document, error) {
	var doc *reports.Document
	err := d.do(ctx, func(ctx context.Context) error {
		b, err := d.get(bookingID)
		if err != nil {
			return err
		}

		doc = reports.TextDocument(reports.InvoiceFilename(b.ID), reports.RenderInvoice(b, d.clock.Now()))
		d.toasts.Show("Invoice generated for "+b.CustomerName, domain.ToastSuccess, iconInvoice)
		return nil
	})
	return doc, err
}

// Report формирует дневной отчет в текстовом виде или в xlsx
func (d *Dashboard) Report(ctx context.Context, format ReportFormat) (*reports.Document, error) {
	var doc *reports.Document
	err := d.do(ctx, func(ctx context.Context) error {
		now := d.clock.Now()
		list := d.engine.List()
		stats := d.engine.Stats()

		switch format {
		case ReportFormatText:
			doc = reports.TextDocument(
				reports.DailyReportFilename(now, string(ReportFormatText)),
				reports.RenderDailyReport(list, stats, now),
			)
		case ReportFormatXLSX:
			content, err := reports.RenderDailyReportXLSX(list, stats, now)
			if err != nil {
				d.logger.Error("Report: xlsx: %v", err)
				return fmt.Errorf("%w: %v", ErrReport, err)
			}
			doc = &reports.Document{
				Filename:    reports.DailyReportFilename(now, string(ReportFormatXLSX)),
				ContentType: reports.ContentTypeXLSX,
				Content:     content,
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
		}

		d.toasts.Show("Daily report generated", domain.ToastSuccess, iconChart)
		return nil
	})
	return doc, err
}

// Notifications возвращает всплывающие уведомления, ленту и счетчик непрочитанных
func (d *Dashboard) Notifications(ctx context.Context) (*NotificationsResponse, error) {
	var resp *NotificationsResponse
	err := d.read(ctx, func(ctx context.Context) error {
		resp = d.notificationsState()
		return nil
	})
	return resp, err
}

// MarkNotificationsRead сбрасывает счетчик непрочитанных (панель уведомлений открыта)
func (d *Dashboard) MarkNotificationsRead(ctx context.Context) (*NotificationsResponse, error) {
	var resp *NotificationsResponse
	err := d.do(ctx, func(ctx context.Context) error {
		d.unread = 0
		resp = d.notificationsState()
		return nil
	})
	return resp, err
}

// DismissToast убирает всплывающее уведомление
// Повторное удаление ничего не делает и возвращает false
func (d *Dashboard) DismissToast(ctx context.Context, toastID string) (bool, error) {
	var removed bool
	err := d.do(ctx, func(ctx context.Context) error {
		removed = d.toasts.Remove(toastID)
		return nil
	})
	return removed, err
}

// Close останавливает симуляцию и таймеры уведомлений, затем очередь
// Нельзя вызывать из функции, выполняющейся в очереди
func (d *Dashboard) Close() {
	d.closeOnce.Do(func() {
		close(d.stop)
		d.wg.Wait()

		err := d.txManager.DoSerializable(context.Background(), func(ctx context.Context) error {
			d.toasts.Close()
			return nil
		})
		if err != nil {
			d.logger.Warn("Close: notifications: %v", err)
		}

		d.txManager.Close()
		d.logger.Info("Close: provider dashboard closed for email=%s", d.owner.Email)
	})
}

func (d *Dashboard) showTransitionToast(action Action, b domain.Booking) {
	switch action {
	case ActionAccept:
		d.toasts.Show(fmt.Sprintf("Booking %s accepted", b.ID), domain.ToastSuccess, iconCheck)
	case ActionReject:
		d.toasts.Show(fmt.Sprintf("Booking %s cancelled", b.ID), domain.ToastError, iconTimes)
	case ActionStart:
		d.toasts.Show("Service started for "+b.CustomerName, domain.ToastInfo, iconPlay)
	case ActionComplete:
		d.toasts.Show("Service completed for "+b.CustomerName, domain.ToastSuccess, iconCheckCircle)
	}
}

func (d *Dashboard) notificationsState() *NotificationsResponse {
	return &NotificationsResponse{
		Toasts:      FromDomainToasts(d.toasts.List()),
		Feed:        FromFeed(d.feed, d.clock.Now()),
		UnreadCount: d.unread,
	}
}

// get ищет бронирование; выполняется в очереди
func (d *Dashboard) get(bookingID string) (domain.Booking, error) {
	b, err := d.engine.Get(bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			d.logger.Warn("get: booking id=%s not found", bookingID)
			return domain.Booking{}, ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return b, nil
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

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	dismissToastHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/dismiss_toast"
	getBookingHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_calendar"
	getInvoiceHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_invoice"
	getMeHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_me"
	getNotificationsHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_notifications"
	getOverviewHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_overview"
	getReceiptHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_receipt"
	getReportHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_report"
	getStatsHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/get_stats"
	issueDevTokenHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/issue_dev_token"
	listServicesHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/list_services"
	logoutHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/logout"
	markNotificationsReadHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/mark_notifications_read"
	navigateCalendarHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/navigate_calendar"
	selectDateHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/select_date"
	selectTimeHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/select_time"
	simulateBookingHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/simulate_booking"
	submitBookingHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/submit_booking"
	transitionBookingHandler "github.com/m04kA/SMC-WashDashboard/internal/api/handlers/transition_booking"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/config"
	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/infra/seed"
	revocationStore "github.com/m04kA/SMC-WashDashboard/internal/infra/storage/revocation"
	userRepo "github.com/m04kA/SMC-WashDashboard/internal/infra/storage/user"
	"github.com/m04kA/SMC-WashDashboard/internal/integrations/authservice"
	userServiceClient "github.com/m04kA/SMC-WashDashboard/internal/integrations/userservice"
	"github.com/m04kA/SMC-WashDashboard/internal/service/calendar"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
	"github.com/m04kA/SMC-WashDashboard/pkg/metrics"
	"github.com/m04kA/SMC-WashDashboard/pkg/randsource"
	"github.com/m04kA/SMC-WashDashboard/pkg/sessionpool"
	"github.com/m04kA/SMC-WashDashboard/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-WashDashboard...")
	log.Info("Configuration loaded from config.toml")

	// Метрики собираются всегда, наружу отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	timeProvider := &calendar.RealTimeProvider{}

	// Хранилище отозванных токенов
	var revocation session.RevocationStore
	switch cfg.Auth.RevocationStore {
	case config.RevocationStoreRedis:
		redisClient := revocationStore.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		defer closeRedis(redisClient, log)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := revocationStore.Ping(pingCtx, redisClient)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		revocation = revocationStore.NewRedisStore(redisClient, timeProvider)
		log.Info("Successfully connected to redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
	default:
		revocation = revocationStore.NewMemoryStore(timeProvider)
		log.Info("Using in-memory revocation store")
	}

	// Справочник пользователей: PostgreSQL, UserService или только claims токена
	var directory session.UserDirectory
	switch {
	case cfg.Database.Enabled:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		directory = userRepo.NewRepository(db)

	case cfg.UserService.URL != "":
		directory = userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	default:
		log.Info("User directory disabled, profile is taken from token claims")
	}

	// Сессии
	tokenManager := authservice.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, timeProvider)
	sessionSvc := session.NewService(tokenManager, revocation, directory, log)

	// Демо-данные
	fixtures, err := seed.Load(cfg.Booking.SeedFile)
	if err != nil {
		log.Fatal("Failed to load seed data: %v", err)
	}
	log.Info("Seed data loaded (customer bookings=%d, provider bookings=%d)",
		len(fixtures.Customer.Bookings), len(fixtures.Provider.Bookings))

	// Дашборды пользователей по email
	customers := sessionpool.New[*customerDashboard.Dashboard]()
	providers := sessionpool.New[*providerDashboard.Dashboard]()

	providerClock := clock.New()
	random := randsource.NewCrypto()

	openCustomer := func(ctx context.Context, owner domain.User) (interface{}, error) {
		d, err := customers.Get(owner.Email, func() (*customerDashboard.Dashboard, error) {
			bookings, err := seed.BookingsToDomain(fixtures.Customer.Bookings, timeProvider.Now())
			if err != nil {
				return nil, err
			}
			return customerDashboard.NewDashboard(
				owner,
				sessionSvc,
				bookings,
				customerDashboard.Config{WindowDays: cfg.Booking.WindowDays},
				txmanager.NewTransactionManager(),
				timeProvider,
				metricsCollector,
				log,
			)
		})
		if err != nil {
			return nil, err
		}
		metricsCollector.SetActiveSessions(customerDashboard.DashboardName, customers.Len())
		return d, nil
	}

	openProvider := func(ctx context.Context, owner domain.User) (interface{}, error) {
		d, err := providers.Get(owner.Email, func() (*providerDashboard.Dashboard, error) {
			now := providerClock.Now()
			bookings, err := seed.BookingsToDomain(fixtures.Provider.Bookings, now)
			if err != nil {
				return nil, err
			}
			return providerDashboard.NewDashboard(
				owner,
				sessionSvc,
				bookings,
				toFeed(fixtures.Provider.Notifications, now),
				providerDashboard.Config{
					ToastTTL:           cfg.Booking.ToastTTL(),
					SimulationInterval: cfg.Booking.SimulationInterval(),
					SimulationEnabled:  cfg.Booking.SimulationEnabled,
				},
				txmanager.NewTransactionManager(),
				providerClock,
				random,
				metricsCollector,
				log,
			)
		})
		if err != nil {
			return nil, err
		}
		metricsCollector.SetActiveSessions(providerDashboard.DashboardName, providers.Len())
		return d, nil
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(log)
	issueDevToken := issueDevTokenHandler.NewHandler(tokenManager, cfg.Auth.DevTokenTTL(), log)
	getMe := getMeHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log,
		&trackedPool{name: customerDashboard.DashboardName, pool: customers, metrics: metricsCollector},
		&trackedPool{name: providerDashboard.DashboardName, pool: providers, metrics: metricsCollector},
	)

	getBookings := getBookingsHandler.NewHandler(log)
	getStats := getStatsHandler.NewHandler(log)

	getCalendar := getCalendarHandler.NewHandler(log)
	navigateCalendar := navigateCalendarHandler.NewHandler(log)
	selectDate := selectDateHandler.NewHandler(log)
	selectTime := selectTimeHandler.NewHandler(log)
	submitBooking := submitBookingHandler.NewHandler(log)
	getReceipt := getReceiptHandler.NewHandler(log)

	getBooking := getBookingHandler.NewHandler(log)
	transitionBooking := transitionBookingHandler.NewHandler(log)
	simulateBooking := simulateBookingHandler.NewHandler(log)
	getInvoice := getInvoiceHandler.NewHandler(log)
	getOverview := getOverviewHandler.NewHandler(log)
	getReport := getReportHandler.NewHandler(log)
	getNotifications := getNotificationsHandler.NewHandler(log)
	markNotificationsRead := markNotificationsReadHandler.NewHandler(log)
	dismissToast := dismissToastHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Выдача токенов для локальной разработки
	if cfg.Auth.DevTokenTTLMinutes > 0 {
		api.HandleFunc("/auth/dev-token", issueDevToken.Handle).Methods(http.MethodPost)
		log.Warn("Dev token endpoint enabled (ttl=%dm), do not use in production", cfg.Auth.DevTokenTTLMinutes)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionSvc, log))

	protected.HandleFunc("/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// --- Дашборд клиента ---
	customer := protected.PathPrefix("/customer").Subrouter()
	customer.Use(middleware.RequireRole(domain.RoleCustomer, log))
	customer.Use(middleware.Dashboard(openCustomer, log))

	customer.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/calendar/date", selectDate.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/calendar/time", selectTime.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/calendar/{direction:previous|next|today|reset}", navigateCalendar.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	customer.HandleFunc("/bookings/{bookingId}/receipt", getReceipt.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- Дашборд провайдера ---
	provider := protected.PathPrefix("/provider").Subrouter()
	provider.Use(middleware.RequireRole(domain.RoleServiceProvider, log))
	provider.Use(middleware.Dashboard(openProvider, log))

	provider.HandleFunc("/overview", getOverview.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/bookings/simulate", simulateBooking.Handle).Methods(http.MethodPost)
	provider.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/bookings/{bookingId}/invoice", getInvoice.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/bookings/{bookingId}/{action}", transitionBooking.Handle).Methods(http.MethodPatch)
	provider.HandleFunc("/report", getReport.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	provider.HandleFunc("/notifications/read", markNotificationsRead.Handle).Methods(http.MethodPost)
	provider.HandleFunc("/notifications/{toastId}", dismissToast.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем таймеры и очереди всех открытых дашбордов
	customers.Close()
	providers.Close()
	log.Info("Dashboards closed")

	log.Info("Server stopped gracefully")
}

type dashboardPool interface {
	Remove(key string) bool
	Len() int
}

// trackedPool обновляет метрику открытых дашбордов при удалении
type trackedPool struct {
	name    string
	pool    dashboardPool
	metrics *metrics.Metrics
}

func (p *trackedPool) Remove(key string) bool {
	removed := p.pool.Remove(key)
	p.metrics.SetActiveSessions(p.name, p.pool.Len())
	return removed
}

// toFeed переводит возраст записей ленты из демо-данных в абсолютное время
func toFeed(fixtures []seed.NotificationFixture, now time.Time) []providerDashboard.FeedEntry {
	feed := make([]providerDashboard.FeedEntry, len(fixtures))
	for i, n := range fixtures {
		feed[i] = providerDashboard.FeedEntry{
			Icon:      n.Icon,
			Message:   n.Message,
			CreatedAt: now.Add(-time.Duration(n.MinutesAgo) * time.Minute),
		}
	}
	return feed
}

func closeRedis(client *redis.Client, log *logger.Logger) {
	if err := client.Close(); err != nil {
		log.Error("Failed to close redis client: %v", err)
	}
}

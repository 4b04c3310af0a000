package notifications

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Service список всплывающих уведомлений с автоудалением по TTL
// Не потокобезопасен: Show, Remove, List и Close вызываются из очереди дашборда,
// туда же таймер отправляет удаление
type Service struct {
	clock     Clock
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
	ttl       time.Duration

	toasts []domain.Toast
	timers map[string]*clock.Timer
	closed bool
}

// NewService создает сервис уведомлений
func NewService(clk Clock, txManager TransactionManager, metrics Metrics, ttl time.Duration, logger Logger) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultToastTTL
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		clock:     clk,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
		ttl:       ttl,
		toasts:    make([]domain.Toast, 0),
		timers:    make(map[string]*clock.Timer),
	}
}

// Show добавляет уведомление и планирует его удаление через TTL
// После Close уведомления не добавляются
func (s *Service) Show(message string, toastType domain.ToastType, icon string) domain.Toast {
	toast := domain.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      toastType,
		Icon:      icon,
		CreatedAt: s.clock.Now(),
	}

	if s.closed {
		s.logger.Warn("Show: service closed, toast %q dropped", message)
		return toast
	}

	s.toasts = append(s.toasts, toast)
	s.timers[toast.ID] = s.clock.AfterFunc(s.ttl, func() {
		s.expire(toast.ID)
	})
	s.metrics.ToastShown(string(toastType))

	s.logger.Info("Show: toast id=%s type=%s message=%q", toast.ID, toastType, message)
	return toast
}

// Remove удаляет уведомление по ID
// Повторное удаление ничего не делает, возвращает false
func (s *Service) Remove(id string) bool {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i := range s.toasts {
		if s.toasts[i].ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}

	return false
}

// List возвращает уведомления в порядке создания
func (s *Service) List() []domain.Toast {
	result := make([]domain.Toast, len(s.toasts))
	copy(result, s.toasts)
	return result
}

// Close останавливает все таймеры; оставшиеся уведомления больше не удаляются
func (s *Service) Close() {
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.closed = true
}

// expire вызывается из горутины таймера и передает удаление в очередь
func (s *Service) expire(id string) {
	err := s.txManager.DoSerializable(context.Background(), func(ctx context.Context) error {
		if s.closed {
			return nil
		}
		if s.Remove(id) {
			s.logger.Info("expire: toast id=%s removed after %s", id, s.ttl)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("expire: toast id=%s not removed: %v", id, err)
	}
}

type nopMetrics struct{}

func (nopMetrics) ToastShown(string) {}

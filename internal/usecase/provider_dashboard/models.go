package provider_dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
)

// Config параметры дашборда провайдера
type Config struct {
	ToastTTL           time.Duration
	SimulationInterval time.Duration
	SimulationEnabled  bool
}

// Action действие провайдера над бронированием
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
)

// ParseAction конвертирует строку из URL в Action
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionAccept, ActionReject, ActionStart, ActionComplete:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// ReportFormat формат выгрузки дневного отчета
type ReportFormat string

const (
	ReportFormatText ReportFormat = "txt"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ParseReportFormat конвертирует строку в ReportFormat, пустая строка = txt
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReportFormatText:
		return ReportFormatText, nil
	case ReportFormatXLSX:
		return ReportFormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// FeedEntry запись ленты уведомлений
type FeedEntry struct {
	Icon      string
	Message   string
	CreatedAt time.Time
}

// ToastResponse всплывающее уведомление
type ToastResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedEntryResponse запись ленты уведомлений
type FeedEntryResponse struct {
	Icon    string `json:"icon"`
	Message string `json:"message"`
	Time    string `json:"time"` // "2 minutes ago"
}

// NotificationsResponse уведомления провайдера
type NotificationsResponse struct {
	Toasts      []ToastResponse     `json:"toasts"`
	Feed        []FeedEntryResponse `json:"feed"`
	UnreadCount int                 `json:"unreadCount"`
}

// OverviewResponse шапка дашборда провайдера
type OverviewResponse struct {
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Role          string               `json:"role"`
	Stats         models.StatsResponse `json:"stats"`
	TotalBookings int                  `json:"totalBookings"`
	UnreadCount   int                  `json:"unreadCount"`
}

// FromDomainToasts конвертирует уведомления в DTO
func FromDomainToasts(toasts []domain.Toast) []ToastResponse {
	result := make([]ToastResponse, len(toasts))
	for i, t := range toasts {
		result[i] = ToastResponse{
			ID:        t.ID,
			Message:   t.Message,
			Type:      string(t.Type),
			Icon:      t.Icon,
			CreatedAt: t.CreatedAt,
		}
	}
	return result
}

// FromFeed конвертирует ленту в DTO, возраст записи считается от now
func FromFeed(feed []FeedEntry, now time.Time) []FeedEntryResponse {
	result := make([]FeedEntryResponse, len(feed))
	for i, e := range feed {
		result[i] = FeedEntryResponse{
			Icon:    e.Icon,
			Message: e.Message,
			Time:    relativeAge(now.Sub(e.CreatedAt)),
		}
	}
	return result
}

func relativeAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "minute")
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour")
	default:
		return plural(int(age/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

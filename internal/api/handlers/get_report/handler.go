package get_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

const (
	msgInvalidFormat = "некорректный формат отчета: ожидается txt или xlsx"
	msgSessionClosed = "сессия завершена"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/provider/report
// Query params: format=txt|xlsx (по умолчанию txt)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	format, err := providerDashboard.ParseReportFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.logger.Warn("GET /provider/report - Invalid format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /provider/report - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	doc, err := dashboard.Report(r.Context(), format)
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrInvalidFormat):
			handlers.RespondBadRequest(w, msgInvalidFormat)
		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("GET /provider/report - Failed to generate report: format=%s, error=%v", format, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /provider/report - Report generated: file=%s, size=%d", doc.Filename, len(doc.Content))
	handlers.RespondFile(w, doc.Filename, doc.ContentType, doc.Content)
}

package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := customerDashboard.Services()

	h.logger.Info("GET /services - Catalog retrieved: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}

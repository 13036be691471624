package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kaagaz/internal/service"
)

// InsightsHandler handles GST compliance lookup endpoints backed by the
// external GST API.
type InsightsHandler struct {
	insightsService service.InsightsService
	clientService   service.ClientService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService, clientService service.ClientService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService, clientService: clientService}
}

// Status handles GET /api/v1/clients/:id/insights/status
func (h *InsightsHandler) Status(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	status, err := h.insightsService.Status(c.Request.Context(), client.GSTIN)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, status)
}

// Details handles GET /api/v1/insights/details?gstin=... or ?pan=...
func (h *InsightsHandler) Details(c *gin.Context) {
	if _, ok := extractUserID(c); !ok {
		return
	}

	gstin := c.Query("gstin")
	pan := c.Query("pan")

	switch {
	case gstin != "":
		details, err := h.insightsService.DetailsByGSTIN(c.Request.Context(), gstin)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, details)
	case pan != "":
		details, err := h.insightsService.DetailsByPAN(c.Request.Context(), pan)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, details)
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "either gstin or pan query parameter is required")
	}
}

// FilingStatus handles GET /api/v1/clients/:id/insights/filing-status?fy=2024-25
func (h *InsightsHandler) FilingStatus(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fy := c.Query("fy")
	if fy == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "fy query parameter is required")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	rows, err := h.insightsService.FilingStatus(c.Request.Context(), client.GSTIN, fy)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kaagaz/internal/service"
)

// maxWorkbookSize caps uploaded GSTR-2B workbooks at 10 MiB.
const maxWorkbookSize = 10 << 20

// FilingHandler handles filing document preparation, workbook
// reconciliation, and export endpoints.
type FilingHandler struct {
	filingService service.FilingService
	exportService service.ExportService
	clientService service.ClientService
}

// NewFilingHandler creates a new FilingHandler.
func NewFilingHandler(filingService service.FilingService, exportService service.ExportService, clientService service.ClientService) *FilingHandler {
	return &FilingHandler{
		filingService: filingService,
		exportService: exportService,
		clientService: clientService,
	}
}

// PrepareGSTR1 handles POST /api/v1/clients/:id/filings/gstr1
func (h *FilingHandler) PrepareGSTR1(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.GSTR1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.filingService.PrepareGSTR1(c.Request.Context(), userID, clientID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// PrepareGSTR3B handles POST /api/v1/clients/:id/filings/gstr3b
func (h *FilingHandler) PrepareGSTR3B(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.GSTR3BRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.filingService.PrepareGSTR3B(c.Request.Context(), userID, clientID, req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ParseITCWorkbook handles POST /api/v1/filings/itc-workbook
// The workbook arrives as a multipart file under the "file" field.
func (h *FilingHandler) ParseITCWorkbook(c *gin.Context) {
	if _, ok := extractUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > maxWorkbookSize {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "workbook exceeds maximum allowed size")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	result, err := h.filingService.ParseITCWorkbook(f)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ExportGSTR1Request adds export options to the preparation request.
type ExportGSTR1Request struct {
	service.GSTR1Request
	Notify bool `json:"notify"`
}

// ExportGSTR3BRequest adds export options to the preparation request.
type ExportGSTR3BRequest struct {
	service.GSTR3BRequest
	Notify bool `json:"notify"`
}

// ExportGSTR1 handles POST /api/v1/clients/:id/filings/gstr1/export
func (h *FilingHandler) ExportGSTR1(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ExportGSTR1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.filingService.PrepareGSTR1(c.Request.Context(), userID, clientID, req.GSTR1Request)
	if err != nil {
		HandleError(c, err)
		return
	}

	export, err := h.exportService.ExportDocument(c.Request.Context(), userID, service.ExportInput{
		ReturnType: "GSTR-1",
		Period:     result.Document.Fp,
		FileName:   result.Document.ExportFileName(),
		Document:   result.Document,
		ClientName: client.Name,
		Notify:     req.Notify,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, export)
}

// ExportGSTR3B handles POST /api/v1/clients/:id/filings/gstr3b/export
func (h *FilingHandler) ExportGSTR3B(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ExportGSTR3BRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.filingService.PrepareGSTR3B(c.Request.Context(), userID, clientID, req.GSTR3BRequest)
	if err != nil {
		HandleError(c, err)
		return
	}

	export, err := h.exportService.ExportDocument(c.Request.Context(), userID, service.ExportInput{
		ReturnType: "GSTR-3B",
		Period:     result.Document.Fp,
		FileName:   result.Document.ExportFileName(),
		Document:   result.Document,
		ClientName: client.Name,
		Notify:     req.Notify,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, export)
}

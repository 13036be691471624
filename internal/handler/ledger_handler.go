package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kaagaz/internal/csvexport"
	"kaagaz/internal/service"
)

// LedgerHandler handles sales and purchase invoice endpoints nested
// under a client.
type LedgerHandler struct {
	ledgerService service.LedgerService
	clientService service.ClientService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService service.LedgerService, clientService service.ClientService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, clientService: clientService}
}

// AddSalesInvoice handles POST /api/v1/clients/:id/sales-invoices
func (h *LedgerHandler) AddSalesInvoice(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CreateSalesInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.ledgerService.AddSalesInvoice(c.Request.Context(), userID, clientID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// ListSalesInvoices handles GET /api/v1/clients/:id/sales-invoices
func (h *LedgerHandler) ListSalesInvoices(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoices, err := h.ledgerService.ListSalesInvoices(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// DeleteSalesInvoice handles DELETE /api/v1/clients/:id/sales-invoices/:invoiceID
func (h *LedgerHandler) DeleteSalesInvoice(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteSalesInvoice(c.Request.Context(), userID, clientID, invoiceID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "sales invoice deleted"})
}

// ExportSalesCSV handles GET /api/v1/clients/:id/sales-invoices/export.csv
func (h *LedgerHandler) ExportSalesCSV(c *gin.Context) {
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

	invoices, err := h.ledgerService.ListSalesInvoices(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "sales_ledger_"+client.GSTIN+".csv"))
	c.Status(http.StatusOK)
	if err := csvexport.WriteSalesLedger(c.Writer, client, invoices); err != nil {
		// Headers are already out; the truncated body is all we can signal.
		log.Printf("ledgerHandler.ExportSalesCSV: %v", err)
	}
}

// AddPurchaseInvoice handles POST /api/v1/clients/:id/purchase-invoices
func (h *LedgerHandler) AddPurchaseInvoice(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CreatePurchaseInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.ledgerService.AddPurchaseInvoice(c.Request.Context(), userID, clientID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// ListPurchaseInvoices handles GET /api/v1/clients/:id/purchase-invoices
func (h *LedgerHandler) ListPurchaseInvoices(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoices, err := h.ledgerService.ListPurchaseInvoices(c.Request.Context(), userID, clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoices)
}

// DeletePurchaseInvoice handles DELETE /api/v1/clients/:id/purchase-invoices/:invoiceID
func (h *LedgerHandler) DeletePurchaseInvoice(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c, "invoiceID")
	if !ok {
		return
	}

	if err := h.ledgerService.DeletePurchaseInvoice(c.Request.Context(), userID, clientID, invoiceID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "purchase invoice deleted"})
}

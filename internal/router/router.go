package router

import (
	"github.com/gin-gonic/gin"

	"kaagaz/internal/handler"
	"kaagaz/internal/middleware"
	"kaagaz/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	clientH *handler.ClientHandler,
	ledgerH *handler.LedgerHandler,
	filingH *handler.FilingHandler,
	insightsH *handler.InsightsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Client (filer) routes
	clients := protected.Group("/clients")
	clients.POST("", clientH.Create)
	clients.GET("", clientH.List)
	clients.GET("/:id", clientH.Get)
	clients.DELETE("/:id", clientH.Delete)

	// Ledger routes nested under a client
	clients.POST("/:id/sales-invoices", ledgerH.AddSalesInvoice)
	clients.GET("/:id/sales-invoices", ledgerH.ListSalesInvoices)
	clients.GET("/:id/sales-invoices/export.csv", ledgerH.ExportSalesCSV)
	clients.DELETE("/:id/sales-invoices/:invoiceID", ledgerH.DeleteSalesInvoice)
	clients.POST("/:id/purchase-invoices", ledgerH.AddPurchaseInvoice)
	clients.GET("/:id/purchase-invoices", ledgerH.ListPurchaseInvoices)
	clients.DELETE("/:id/purchase-invoices/:invoiceID", ledgerH.DeletePurchaseInvoice)

	// Filing document preparation and export
	clients.POST("/:id/filings/gstr1", filingH.PrepareGSTR1)
	clients.POST("/:id/filings/gstr1/export", filingH.ExportGSTR1)
	clients.POST("/:id/filings/gstr3b", filingH.PrepareGSTR3B)
	clients.POST("/:id/filings/gstr3b/export", filingH.ExportGSTR3B)

	// Workbook reconciliation is not client-scoped; the parsed rows are
	// returned to the caller and never stored.
	protected.POST("/filings/itc-workbook", filingH.ParseITCWorkbook)

	// Compliance insights
	clients.GET("/:id/insights/status", insightsH.Status)
	clients.GET("/:id/insights/filing-status", insightsH.FilingStatus)
	protected.GET("/insights/details", insightsH.Details)

	return r
}

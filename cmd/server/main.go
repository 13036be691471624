package main

import (
	"fmt"
	"log"

	"kaagaz/internal/config"
	"kaagaz/internal/email/noop"
	"kaagaz/internal/email/ses"
	"kaagaz/internal/gstapi"
	"kaagaz/internal/handler"
	"kaagaz/internal/port"
	"kaagaz/internal/repository/postgres"
	"kaagaz/internal/router"
	"kaagaz/internal/service"
	s3storage "kaagaz/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	salesRepo := postgres.NewSalesInvoiceRepo(db)
	purchaseRepo := postgres.NewPurchaseInvoiceRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize GST lookup client
	gstLookup := gstapi.NewClient(cfg.GSTAPI)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo)
	ledgerSvc := service.NewLedgerService(clientRepo, salesRepo, purchaseRepo)
	filingSvc := service.NewFilingService(clientRepo, salesRepo)
	exportSvc := service.NewExportService(s3Client, emailSender, userRepo, cfg.S3)
	insightsSvc := service.NewInsightsService(gstLookup)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	clientH := handler.NewClientHandler(clientSvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc, clientSvc)
	filingH := handler.NewFilingHandler(filingSvc, exportSvc, clientSvc)
	insightsH := handler.NewInsightsHandler(insightsSvc, clientSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, clientH, ledgerH, filingH, insightsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

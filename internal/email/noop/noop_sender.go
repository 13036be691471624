package noop

import (
	"context"
	"log"

	"kaagaz/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendExportReady(_ context.Context, n port.ExportNotification) error {
	log.Printf("[NOOP EMAIL] %s export ready for %s (%s) to %s <%s>: %s",
		n.ReturnType, n.ClientName, n.Period, n.ToName, n.ToEmail, n.DownloadURL)
	return nil
}

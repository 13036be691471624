package port

import "context"

// ExportNotification carries the details of a finished filing export.
type ExportNotification struct {
	ToEmail     string
	ToName      string
	ReturnType  string // "GSTR-1" or "GSTR-3B"
	Period      string // MMYYYY
	ClientName  string
	DownloadURL string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendExportReady(ctx context.Context, n ExportNotification) error
}

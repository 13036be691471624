package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kaagaz/internal/config"
	"kaagaz/internal/port"
)

// ExportInput carries a prepared filing document and its metadata for upload.
type ExportInput struct {
	ReturnType string // "GSTR-1" or "GSTR-3B"
	Period     string // MMYYYY
	FileName   string
	Document   any
	ClientName string
	Notify     bool
}

// ExportResult is returned after a successful export.
type ExportResult struct {
	Key         string `json:"key"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExportService uploads prepared filing documents to object storage and
// hands back a time-limited download link.
type ExportService interface {
	ExportDocument(ctx context.Context, userID uuid.UUID, in ExportInput) (*ExportResult, error)
}

type exportService struct {
	storage  port.ObjectStorage
	email    port.EmailSender
	userRepo port.UserRepository
	s3cfg    config.S3Config
}

// NewExportService creates a new ExportService implementation.
func NewExportService(storage port.ObjectStorage, email port.EmailSender, userRepo port.UserRepository, s3cfg config.S3Config) ExportService {
	return &exportService{storage: storage, email: email, userRepo: userRepo, s3cfg: s3cfg}
}

func (s *exportService) ExportDocument(ctx context.Context, userID uuid.UUID, in ExportInput) (*ExportResult, error) {
	payload, err := json.MarshalIndent(in.Document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exportService.ExportDocument: marshal: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s", userID, in.FileName)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(payload),
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("exportService.ExportDocument: upload: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("exportService.ExportDocument: presign: %w", err)
	}

	if in.Notify {
		s.notify(ctx, userID, in, url)
	}

	log.Printf("exportService.ExportDocument: uploaded %s (%d bytes)", key, len(payload))
	return &ExportResult{
		Key:         key,
		FileName:    in.FileName,
		DownloadURL: url,
		ExpiresIn:   s.s3cfg.PresignExpiry,
	}, nil
}

// notify sends the export-ready email. Delivery failures are logged and
// swallowed; the export itself already succeeded.
func (s *exportService) notify(ctx context.Context, userID uuid.UUID, in ExportInput, url string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("exportService.notify: lookup user %s: %v", userID, err)
		return
	}

	err = s.email.SendExportReady(ctx, port.ExportNotification{
		ToEmail:     user.Email,
		ToName:      user.FullName,
		ReturnType:  in.ReturnType,
		Period:      in.Period,
		ClientName:  in.ClientName,
		DownloadURL: url,
	})
	if err != nil {
		log.Printf("exportService.notify: send to %s: %v", user.Email, err)
	}
}

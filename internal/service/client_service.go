package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kaagaz/internal/domain"
	"kaagaz/internal/port"
)

// CreateClientInput is the DTO for adding a client.
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	GSTIN string `json:"gstin" binding:"required"`
}

// ClientService defines the client management contract.
type ClientService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, userID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Client, error)
	Delete(ctx context.Context, userID, clientID uuid.UUID) error
}

type clientService struct {
	clientRepo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, userID uuid.UUID, input CreateClientInput) (*domain.Client, error) {
	if len(input.GSTIN) != domain.GSTINLength {
		return nil, domain.ErrInvalidGSTIN
	}

	client := &domain.Client{
		UserID: userID,
		Name:   input.Name,
		GSTIN:  input.GSTIN,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("clientService.Create: %w", err)
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, userID, clientID uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, userID, clientID)
}

func (s *clientService) List(ctx context.Context, userID uuid.UUID) ([]domain.Client, error) {
	return s.clientRepo.ListByUser(ctx, userID)
}

// Delete removes the client without cascading to its invoice ledgers.
// Orphaned ledger rows are a known follow-up for a background cleanup job.
func (s *clientService) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	if err := s.clientRepo.Delete(ctx, userID, clientID); err != nil {
		return err
	}
	log.Printf("clientService.Delete: client %s removed for user %s; ledger rows retained", clientID, userID)
	return nil
}

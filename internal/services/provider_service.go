package services

import (
	"context"
	"log"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"
)

type providerService struct {
	providerRepo storage.ProviderRepository
	userRepo     storage.UserRepository
}

func NewProviderService(providerRepo storage.ProviderRepository, userRepo storage.UserRepository) ProviderService {
	return &providerService{
		providerRepo: providerRepo,
		userRepo:     userRepo,
	}
}

func (s *providerService) ListProviders(ctx context.Context) ([]dto.ProviderResponse, error) {
	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		log.Printf("ProviderService: Error listing providers: %v", err)
		return nil, mapRepoError(err, "listing providers")
	}
	return providers, nil
}

// UpdateProvider applies a partial update across the provider row and its
// linked user. Phone updates hit the users unique constraint and surface
// as ErrConflict.
func (s *providerService) UpdateProvider(ctx context.Context, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := s.providerRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("ProviderService: Error getting provider %d: %v", req.ID, err)
		return nil, mapRepoError(err, "getting provider")
	}

	if req.Name != nil || req.Phone != nil {
		if _, err := s.userRepo.Update(ctx, provider.UserID, req.Name, req.Phone); err != nil {
			log.Printf("ProviderService: Error updating user %d: %v", provider.UserID, err)
			return nil, mapRepoError(err, "updating provider contact")
		}
	}

	if req.ServiceArea != nil || req.IsActive != nil {
		if _, err := s.providerRepo.Update(ctx, req.ID, req.ServiceArea, req.IsActive); err != nil {
			log.Printf("ProviderService: Error updating provider %d: %v", req.ID, err)
			return nil, mapRepoError(err, "updating provider")
		}
	}

	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "reloading providers")
	}
	for i := range providers {
		if providers[i].ID == req.ID {
			return &providers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *providerService) FindByPhone(ctx context.Context, phone string) (*models.Provider, error) {
	provider, err := s.providerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, mapRepoError(err, "finding provider by phone")
	}
	return provider, nil
}

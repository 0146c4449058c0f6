package service

import (
	"context"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type partService struct {
	partRepo repository.PartRepository
}

func NewPartService(partRepo repository.PartRepository) PartService {
	return &partService{partRepo: partRepo}
}

func (s *partService) Add(ctx context.Context, part *domain.Part) error {
	if part.SKU == "" {
		return domain.NewValidationError("SKU", "this field is required")
	}
	if part.Quantity < 0 {
		return domain.NewValidationError("Quantity", "must not be negative")
	}
	return s.partRepo.Create(ctx, part)
}

func (s *partService) Get(ctx context.Context, id int32) (*domain.Part, error) {
	return s.partRepo.GetByID(ctx, id)
}

func (s *partService) Update(ctx context.Context, part *domain.Part) error {
	if part.SKU == "" {
		return domain.NewValidationError("SKU", "this field is required")
	}
	if _, err := s.partRepo.GetByID(ctx, part.ID); err != nil {
		return err
	}
	return s.partRepo.Update(ctx, part)
}

func (s *partService) Delete(ctx context.Context, id int32) error {
	return s.partRepo.Delete(ctx, id)
}

func (s *partService) List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error) {
	return s.partRepo.List(ctx, page, pageSize)
}

func (s *partService) AdjustStock(ctx context.Context, id int32, delta int32) (*domain.Part, error) {
	if delta == 0 {
		return s.partRepo.GetByID(ctx, id)
	}
	return s.partRepo.AdjustQuantity(ctx, id, delta)
}

package service

import (
	"context"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) Add(ctx context.Context, car *domain.Car) error {
	if car.Plate == "" {
		return domain.NewValidationError("Plate", "this field is required")
	}
	if car.DailyRateCents < 0 {
		return domain.NewValidationError("DailyRateCents", "must not be negative")
	}
	// New cars enter the fleet available until a checkout claims them.
	car.IsAvailable = true
	return s.carRepo.Create(ctx, car)
}

func (s *carService) Get(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) Update(ctx context.Context, car *domain.Car) error {
	if car.Plate == "" {
		return domain.NewValidationError("Plate", "this field is required")
	}
	if _, err := s.carRepo.GetByID(ctx, car.ID); err != nil {
		return err
	}
	return s.carRepo.Update(ctx, car)
}

func (s *carService) Delete(ctx context.Context, id int32) error {
	return s.carRepo.Delete(ctx, id)
}

func (s *carService) List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error) {
	return s.carRepo.List(ctx, page, pageSize)
}

package service

import (
	"context"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Add(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" {
		return domain.NewValidationError("Name", "this field is required")
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) Get(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) Update(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" {
		return domain.NewValidationError("Name", "this field is required")
	}
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, id int32) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, page, pageSize)
}

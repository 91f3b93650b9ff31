package service

import (
	"context"
	"errors"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/idx"
)

// CompanyService manages the gyms (tenants) themselves.
type CompanyService struct {
	Store store.Store
}

func (s *CompanyService) Create(ctx context.Context, name string) (domain.Company, error) {
	if name == "" {
		return domain.Company{}, ErrValidation
	}

	c := domain.Company{
		ID:   idx.New().String(),
		Name: name,
	}
	if err := s.Store.Companies().CreateCompany(ctx, c); err != nil {
		return domain.Company{}, err
	}
	return s.Get(ctx, c.ID)
}

func (s *CompanyService) Get(ctx context.Context, id string) (domain.Company, error) {
	c, err := s.Store.Companies().GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, err
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.Store.Companies().ListCompanies(ctx)
}

func (s *CompanyService) Rename(ctx context.Context, id, name string) (domain.Company, error) {
	if name == "" {
		return domain.Company{}, ErrValidation
	}

	if err := s.Store.Companies().UpdateCompanyName(ctx, id, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, err
	}
	return s.Get(ctx, id)
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Companies().DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

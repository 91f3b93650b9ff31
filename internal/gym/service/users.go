package service

import (
	"context"
	"errors"
	"time"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/cryptox"
	"github.com/ironloft/gymd/pkg/idx"
)

// UserService manages gym member and staff accounts. Password hashes never
// leave this layer.
type UserService struct {
	Store store.Store
}

type CreateUserParams struct {
	Username  string
	Name      string
	Password  string
	Role      string
	CompanyID string
}

// UpdateUserParams carries the mutable fields. Nil pointers mean "leave as
// is", so a partial update does not clobber the rest of the record.
type UpdateUserParams struct {
	Name     *string
	Password *string
	Role     *string
}

func (s *UserService) Create(ctx context.Context, p CreateUserParams) (domain.User, error) {
	if p.Username == "" || p.Password == "" || !domain.ValidRole(p.Role) {
		return domain.User{}, ErrValidation
	}

	// The company must exist before we hang a user off it.
	if _, err := s.Store.Companies().GetCompanyByID(ctx, p.CompanyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrValidation
		}
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     p.Username,
		Name:         p.Name,
		PasswordHash: hash,
		Role:         domain.Role(p.Role),
		CompanyID:    p.CompanyID,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, p UpdateUserParams) (domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		hash, err := cryptox.HashPassword(*p.Password)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = hash
	}
	if p.Role != nil {
		if !domain.ValidRole(*p.Role) {
			return domain.User{}, ErrValidation
		}
		u.Role = domain.Role(*p.Role)
	}

	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return s.Get(ctx, id)
}

// RecordPayment stamps the user's last payment at the current time.
func (s *UserService) RecordPayment(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u.LastPayment = &now

	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes the account. The schema cascades to the refresh token, so
// a deleted user cannot refresh their way back in.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

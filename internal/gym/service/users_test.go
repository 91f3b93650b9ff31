package service

import (
	"context"
	"testing"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/pkg/cryptox"
	"github.com/ironloft/gymd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := &UserService{Store: env.store}

	company := domain.Company{ID: idx.New().String(), Name: "Iron Loft"}
	require.NoError(t, env.store.Companies().CreateCompany(ctx, company))

	u, err := users.Create(ctx, CreateUserParams{
		Username:  "alice",
		Name:      "Alice",
		Password:  "hunter2!",
		Role:      "staff",
		CompanyID: company.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, domain.RoleStaff, u.Role)
	require.NoError(t, cryptox.VerifyPassword("hunter2!", u.PasswordHash))

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := users.Create(ctx, CreateUserParams{
			Username:  "alice",
			Name:      "Other Alice",
			Password:  "different",
			Role:      "client",
			CompanyID: company.ID,
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("unknown company rejected", func(t *testing.T) {
		_, err := users.Create(ctx, CreateUserParams{
			Username:  "bob",
			Password:  "hunter2!",
			Role:      "client",
			CompanyID: idx.New().String(),
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("bad role rejected", func(t *testing.T) {
		_, err := users.Create(ctx, CreateUserParams{
			Username:  "carol",
			Password:  "hunter2!",
			Role:      "superuser",
			CompanyID: company.ID,
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := &UserService{Store: env.store}
	u := env.seedUser(t, "alice", "hunter2!", domain.RoleClient)

	name := "Alice Cooper"
	role := "staff"
	updated, err := users.Update(ctx, u.ID, UpdateUserParams{Name: &name, Role: &role})
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", updated.Name)
	require.Equal(t, domain.RoleStaff, updated.Role)
	// Untouched fields survive a partial update.
	require.Equal(t, u.PasswordHash, updated.PasswordHash)

	t.Run("password change re-hashes", func(t *testing.T) {
		pw := "new-password"
		updated, err := users.Update(ctx, u.ID, UpdateUserParams{Password: &pw})
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("new-password", updated.PasswordHash))
	})

	t.Run("missing user is not found", func(t *testing.T) {
		_, err := users.Update(ctx, idx.New().String(), UpdateUserParams{Name: &name})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserServicePaymentAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := &UserService{Store: env.store}
	u := env.seedUser(t, "alice", "hunter2!", domain.RoleClient)

	require.Nil(t, u.LastPayment)

	paid, err := users.RecordPayment(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, paid.LastPayment)

	_, err = users.RecordPayment(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, users.Delete(ctx, u.ID))
	require.ErrorIs(t, users.Delete(ctx, u.ID), ErrNotFound)

	_, err = users.Get(ctx, u.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/ironloft/gymd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCompanyLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	companies := &CompanyService{Store: env.store}

	c, err := companies.Create(ctx, "Iron Loft Downtown")
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	_, err = companies.Create(ctx, "")
	require.ErrorIs(t, err, ErrValidation)

	renamed, err := companies.Rename(ctx, c.ID, "Iron Loft CBD")
	require.NoError(t, err)
	require.Equal(t, "Iron Loft CBD", renamed.Name)

	_, err = companies.Rename(ctx, idx.New().String(), "Nope")
	require.ErrorIs(t, err, ErrNotFound)

	all, err := companies.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, companies.Delete(ctx, c.ID))
	require.ErrorIs(t, companies.Delete(ctx, c.ID), ErrNotFound)
}

package sqlite

import (
	"context"

	"github.com/ironloft/gymd/internal/gym/domain"
)

type refreshTokensRepo struct {
	db dbtx
}

func (r *refreshTokensRepo) GetRefreshTokenByUserID(
	ctx context.Context,
	userID string,
) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, token_hash, expires_at, created_at, updated_at
		FROM refresh_tokens WHERE user_id = ?`, userID,
	).Scan(&t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}

// UpsertRefreshToken replaces any existing record for the user in one
// statement. Concurrent logins and refreshes race here and the last write
// wins, which is exactly the intended single-session behaviour.
func (r *refreshTokensRepo) UpsertRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			token_hash = excluded.token_hash,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP`,
		t.UserID, t.TokenHash, t.ExpiresAt,
	)
	return err
}

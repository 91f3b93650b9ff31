package service

import (
	"context"
	"errors"
	"time"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/cryptox"
	"github.com/ironloft/gymd/pkg/jwtx"
	"github.com/ironloft/gymd/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrExpiredRefresh     = errors.New("expired_refresh_token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not_found")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrValidation         = errors.New("validation")
)

// TokenService issues and rotates token pairs. Each user has at most one
// active refresh token: issuing a new pair overwrites the stored record, so
// a login on a second device invalidates the first device's refresh token.
type TokenService struct {
	Signer     *jwtx.HS256
	Store      store.Store
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issue signs a fresh access token for the user and rotates their refresh
// token. The opaque refresh value is returned to the caller; only its
// fingerprint is persisted.
func (s *TokenService) Issue(ctx context.Context, u domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	accessToken, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}

	refreshOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	rt := domain.RefreshToken{
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refreshOpaque),
		ExpiresAt: now.Add(s.RefreshTTL),
	}

	// Single upsert statement; the store serialises concurrent logins.
	if err := s.Store.RefreshTokens().UpsertRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshOpaque,
		ExpiresIn:    s.AccessTTL,
	}, nil
}

// Refresh validates the presented refresh token against the user's stored
// record and, on success, issues a rotated pair. The old refresh token is
// unusable afterwards because the upsert overwrites its fingerprint. The
// whole verify-then-rotate runs in one transaction so two concurrent
// refreshes of the same token cannot both succeed against the same record.
func (s *TokenService) Refresh(
	ctx context.Context,
	userID, refreshOpaque string,
) (*domain.TokenPair, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	var result *domain.TokenPair

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Lookup the single persisted record for this user
		rt, err := tx.RefreshTokens().GetRefreshTokenByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		// 2. Constant-time fingerprint comparison
		fp := cryptox.FingerprintToken(refreshOpaque)
		if !cryptox.FingerprintsEqual(fp, rt.TokenHash) {
			l.Info("refresh token mismatch", "user_id", userID)
			return ErrInvalidRefresh
		}

		// 3. A token expiring exactly now is already invalid
		if !rt.ExpiresAt.After(now) {
			return ErrExpiredRefresh
		}

		// 4. Load the user so the new access token reflects the current role
		u, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		// 5. Rotate
		accessToken, err := s.signAccess(u, now)
		if err != nil {
			return err
		}

		refreshNew, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}

		if err := tx.RefreshTokens().UpsertRefreshToken(ctx, domain.RefreshToken{
			UserID:    u.ID,
			TokenHash: cryptox.FingerprintToken(refreshNew),
			ExpiresAt: now.Add(s.RefreshTTL),
		}); err != nil {
			return err
		}

		result = &domain.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshNew,
			ExpiresIn:    s.AccessTTL,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *TokenService) signAccess(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		u.ID,
		u.Username,
		string(u.Role),
		u.CompanyID,
		s.AccessTTL,
		s.Signer.Issuer(),
		now,
	)
	return s.Signer.Sign(claims)
}

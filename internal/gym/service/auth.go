package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/store"
	"github.com/ironloft/gymd/pkg/cryptox"
	"github.com/ironloft/gymd/pkg/jwtx"
	"github.com/ironloft/gymd/pkg/slogx"
)

// dummyHash is a well-formed argon2id record that matches no password. When
// the username does not exist we verify against it anyway so a login attempt
// costs the same time whether or not the account exists.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$WFhYWFhYWFhYWFhYWFhYWA$m2upCLj9XgTVLHfvvNnrbfDTpDqqfzpaSP6BPckHxNk"

// LoginResult is what a successful login hands back to the transport layer:
// the token pair plus the identity fields clients cache locally.
type LoginResult struct {
	Tokens    domain.TokenPair
	UserID    string
	Role      domain.Role
	CompanyID string
}

// AuthService verifies credentials and answers authorization questions.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService

	// EnforcedRoles lists the role names CheckRole actually gates on. A
	// check against a role not in this set passes unconditionally, which
	// keeps adding a new role name from locking everyone out of existing
	// endpoints. Defaults to {admin} when empty.
	EnforcedRoles map[domain.Role]bool
}

// Login verifies the username/password pair and issues a token pair. All
// failures collapse into ErrInvalidCredentials so a caller cannot probe
// which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing work as the found path.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.Tokens.Issue(ctx, u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Tokens:    *pair,
		UserID:    u.ID,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}, nil
}

// DecodeToken extracts claims from a compact JWT without verifying it. Only
// call this on tokens that already passed the authn middleware.
func (s *AuthService) DecodeToken(tokenStr string) (jwtx.Claims, error) {
	return jwtx.Decode(tokenStr)
}

// CheckRole verifies that the named user currently holds roleName. The
// user's role is re-read from the store, so a demotion takes effect even
// while an old access token is still live. Roles outside the enforced set
// always pass.
func (s *AuthService) CheckRole(ctx context.Context, username, roleName string) error {
	if !s.enforced(domain.Role(roleName)) {
		return nil
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	if u.Role != domain.Role(roleName) {
		return ErrUnauthorized
	}
	return nil
}

func (s *AuthService) enforced(r domain.Role) bool {
	if len(s.EnforcedRoles) == 0 {
		return r == domain.RoleAdmin
	}
	return s.EnforcedRoles[r]
}

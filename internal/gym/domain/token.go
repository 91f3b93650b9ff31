package domain

import "time"

// TokenPair is what login and refresh return: the short-lived access token
// (JWT) and the opaque refresh token.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    time.Duration `json:"expires_in"` // access token lifetime
}

// RefreshToken models the stored refresh token record. There is at most one
// row per user: issuing a new token upserts over the previous one, which is
// how rotation invalidates the old value.
type RefreshToken struct {
	UserID    string // unique key
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

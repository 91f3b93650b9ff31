package gym_test

import (
	"net/http"
	"testing"

	"github.com/ironloft/gymd/pkg/api"
	"github.com/stretchr/testify/require"
)

// TestLoginRefreshRotation covers the complete flow:
// 1. Login with username/password
// 2. Refresh the token pair
// 3. Verify the old refresh token stopped working (rotation)
func TestLoginRefreshRotation(t *testing.T) {
	ts := setupServer(t)

	session := login(t, ts, adminUsername, adminPassword)
	require.Equal(t, "admin", session.Role)
	require.Equal(t, ts.adminCompanyID, session.CompanyID)

	// Refresh
	var rotated api.TokenResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/refresh", "",
		api.RefreshRequest{UserID: session.UserID, RefreshToken: session.RefreshToken}, &rotated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEqual(t, session.AccessToken, rotated.AccessToken, "access token should be rotated")
	require.NotEqual(t, session.RefreshToken, rotated.RefreshToken, "refresh token should be rotated")

	// The old refresh token is dead after rotation.
	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/auth/refresh", "",
		api.RefreshRequest{UserID: session.UserID, RefreshToken: session.RefreshToken}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The rotated one still works.
	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/auth/refresh", "",
		api.RefreshRequest{UserID: session.UserID, RefreshToken: rotated.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := setupServer(t)

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/login", "",
			api.LoginRequest{Username: adminUsername, Password: "wrong"}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/login", "",
			api.LoginRequest{Username: "ghost", Password: "whatever"}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/login", "",
			api.LoginRequest{Username: adminUsername}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestSecondLoginInvalidatesFirstSession verifies the one-session-per-user
// behaviour end to end.
func TestSecondLoginInvalidatesFirstSession(t *testing.T) {
	ts := setupServer(t)

	first := login(t, ts, memberUsername, memberPassword)
	second := login(t, ts, memberUsername, memberPassword)

	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/refresh", "",
		api.RefreshRequest{UserID: first.UserID, RefreshToken: first.RefreshToken}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/auth/refresh", "",
		api.RefreshRequest{UserID: second.UserID, RefreshToken: second.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	ts := setupServer(t)

	t.Run("no token", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, ts.URL+"/v1/users", "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, ts.URL+"/v1/users", "not-a-jwt", nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

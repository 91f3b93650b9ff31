package gym_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/ironloft/gymd/internal/gym/http"
	"github.com/ironloft/gymd/internal/gym/service"
	"github.com/ironloft/gymd/internal/gym/store/drivers/sqlite"
	"github.com/ironloft/gymd/pkg/api"
	"github.com/ironloft/gymd/pkg/jwtx"
	"github.com/ironloft/gymd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests exercising the full HTTP surface against a wired router
 * and an in-memory database. No network or containers involved, so these
 * run everywhere `go test` does.
 */

const (
	adminUsername = "admin"
	adminPassword = "Admin123!"

	memberUsername = "member"
	memberPassword = "Member123!"
)

type testServer struct {
	*httptest.Server
	adminCompanyID string
}

// setupServer wires the full application stack, seeds an admin and a regular
// member, and returns a running test server.
func setupServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256("e2e-test-secret", "gymd-test")
	require.NoError(t, err)

	tokens := &service.TokenService{
		Signer:     signer,
		Store:      st,
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}

	logger := slogx.New(slogx.Config{Service: "gymd-test", Level: "error", Format: "text"})
	router := httpapi.NewRouter(signer, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Tokens: tokens}
	router.TokenService = tokens
	router.UserService = &service.UserService{Store: st}
	router.CompanyService = &service.CompanyService{Store: st}
	router.ExerciseService = &service.ExerciseService{Store: st}
	router.WorkoutSheetService = &service.WorkoutSheetService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	ts := &testServer{Server: srv}
	ts.seed(t, router)
	return ts
}

// seed creates the company plus one admin and one member account.
func (ts *testServer) seed(t *testing.T, router *httpapi.Router) {
	t.Helper()
	ctx := t.Context()

	company, err := router.CompanyService.Create(ctx, "Iron Loft")
	require.NoError(t, err)
	ts.adminCompanyID = company.ID

	_, err = router.UserService.Create(ctx, service.CreateUserParams{
		Username:  adminUsername,
		Name:      "Administrator",
		Password:  adminPassword,
		Role:      "admin",
		CompanyID: company.ID,
	})
	require.NoError(t, err)

	_, err = router.UserService.Create(ctx, service.CreateUserParams{
		Username:  memberUsername,
		Name:      "Regular Member",
		Password:  memberPassword,
		Role:      "client",
		CompanyID: company.ID,
	})
	require.NoError(t, err)
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes the JSON response into out (when out is non-nil).
func doJSON(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// login authenticates against the running server and returns the response.
func login(t *testing.T, ts *testServer, username, password string) api.LoginResponse {
	t.Helper()

	var out api.LoginResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/auth/login", "",
		api.LoginRequest{Username: username, Password: password}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)
	return out
}

package gym_test

import (
	"net/http"
	"testing"

	"github.com/ironloft/gymd/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestUserAdministration(t *testing.T) {
	ts := setupServer(t)

	admin := login(t, ts, adminUsername, adminPassword)
	member := login(t, ts, memberUsername, memberPassword)

	newUser := api.CreateUserRequest{
		Username:  "trainer1",
		Name:      "Trainer One",
		Password:  "Trainer123!",
		Role:      "staff",
		CompanyID: ts.adminCompanyID,
	}

	t.Run("member cannot create users", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/users", member.AccessToken, newUser, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	var created api.UserResponse
	t.Run("admin creates a user", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/users", admin.AccessToken, newUser, &created)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "trainer1", created.Username)
		require.Equal(t, "staff", created.Role)
		require.Nil(t, created.LastPayment)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/users", admin.AccessToken, newUser, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("any authenticated user can list", func(t *testing.T) {
		var users []api.UserResponse
		resp := doJSON(t, http.MethodGet, ts.URL+"/v1/users", member.AccessToken, nil, &users)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, users, 3)
	})

	t.Run("record payment", func(t *testing.T) {
		var paid api.UserResponse
		resp := doJSON(t, http.MethodPost, ts.URL+"/v1/users/"+created.ID+"/payment", admin.AccessToken, nil, &paid)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, paid.LastPayment)
	})

	t.Run("update user", func(t *testing.T) {
		name := "Trainer Uno"
		var updated api.UserResponse
		resp := doJSON(t, http.MethodPut, ts.URL+"/v1/users/"+created.ID, admin.AccessToken,
			api.UpdateUserRequest{Name: &name}, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Trainer Uno", updated.Name)
	})

	t.Run("delete user", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, ts.URL+"/v1/users/"+created.ID, admin.AccessToken, nil, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, http.MethodGet, ts.URL+"/v1/users/"+created.ID, admin.AccessToken, nil, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCompanyAdministration(t *testing.T) {
	ts := setupServer(t)

	admin := login(t, ts, adminUsername, adminPassword)
	member := login(t, ts, memberUsername, memberPassword)

	var created api.CompanyResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/companies", admin.AccessToken,
		api.CreateCompanyRequest{Name: "Iron Loft North"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("member writes are forbidden", func(t *testing.T) {
		resp := doJSON(t, http.MethodDelete, ts.URL+"/v1/companies/"+created.ID, member.AccessToken, nil, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("member reads are allowed", func(t *testing.T) {
		var companies []api.CompanyResponse
		resp := doJSON(t, http.MethodGet, ts.URL+"/v1/companies", member.AccessToken, nil, &companies)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, companies, 2)
	})

	var renamed api.CompanyResponse
	resp = doJSON(t, http.MethodPut, ts.URL+"/v1/companies/"+created.ID, admin.AccessToken,
		api.UpdateCompanyRequest{Name: "Iron Loft Northside"}, &renamed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Iron Loft Northside", renamed.Name)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/v1/companies/"+created.ID, admin.AccessToken, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

package http

import (
	"errors"
	"net/http"

	"github.com/ironloft/gymd/internal/gym/service"
	"github.com/ironloft/gymd/pkg/api"
	"github.com/ironloft/gymd/pkg/httpx"
	"github.com/ironloft/gymd/pkg/slogx"
)

// AuthHandler serves the login and refresh endpoints.
type AuthHandler struct {
	AuthService  *service.AuthService
	TokenService *service.TokenService
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Verifies a username/password pair and issues a JWT access token plus an opaque refresh token.
//	@Description	Any previously issued refresh token for the user stops working.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		api.LoginRequest	true	"Credentials"
//	@Success		200		{object}	api.LoginResponse
//	@Failure		400		{object}	api.Error
//	@Failure		401		{object}	api.Error
//	@Failure		500		{object}	api.Error
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.LoginRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		api.ErrInvalidRequest.WriteError(w)
		return
	}

	res, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			api.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		api.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, api.LoginResponse{
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		Role:         string(res.Role),
		UserID:       res.UserID,
		CompanyID:    res.CompanyID,
	})
}

// HandleRefresh godoc
//
//	@Summary		Refresh Tokens
//	@Description	Exchanges a valid refresh token for a rotated token pair. The presented token is invalidated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		api.RefreshRequest	true	"User id and refresh token"
//	@Success		200		{object}	api.TokenResponse
//	@Failure		400		{object}	api.Error
//	@Failure		401		{object}	api.Error
//	@Failure		500		{object}	api.Error
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req api.RefreshRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}
	if req.UserID == "" || req.RefreshToken == "" {
		api.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.TokenService.Refresh(ctx, req.UserID, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh),
			errors.Is(err, service.ErrExpiredRefresh):
			api.ErrUnauthorized.WriteError(w)
		default:
			log.Error("token refresh failed", "err", err)
			api.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, api.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

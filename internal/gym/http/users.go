package http

import (
	"errors"
	"net/http"

	"github.com/ironloft/gymd/internal/gym/domain"
	"github.com/ironloft/gymd/internal/gym/service"
	"github.com/ironloft/gymd/pkg/api"
	"github.com/ironloft/gymd/pkg/httpx"
	"github.com/ironloft/gymd/pkg/slogx"
)

// UsersHandler serves the /v1/users CRUD endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

func toUserResponse(u domain.User) api.UserResponse {
	return api.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        string(u.Role),
		CompanyID:   u.CompanyID,
		LastPayment: u.LastPayment,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// writeUserError maps service errors onto wire errors.
func writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		api.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrValidation):
		api.ErrInvalidRequest.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("user operation failed", "err", err)
		api.ErrServerError.WriteError(w)
	}
}

// HandleCreate godoc
//
//	@Summary	Create User
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		api.CreateUserRequest	true	"New user"
//	@Success	201		{object}	api.UserResponse
//	@Failure	400		{object}	api.Error
//	@Failure	409		{object}	api.Error
//	@Router		/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	u, err := h.UserService.Create(r.Context(), service.CreateUserParams{
		Username:  req.Username,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleList godoc
//
//	@Summary	List Users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	api.UserResponse
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeUserError(w, r, err)
		return
	}

	out := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get User
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	api.UserResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleUpdate godoc
//
//	@Summary	Update User
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"User id"
//	@Param		body	body		api.UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	api.UserResponse
//	@Failure	404		{object}	api.Error
//	@Router		/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateUserRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	u, err := h.UserService.Update(r.Context(), r.PathValue("id"), service.UpdateUserParams{
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandlePayment godoc
//
//	@Summary	Record Payment
//	@Description	Stamps the user's last payment at the current server time.
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	api.UserResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/users/{id}/payment [post].
func (h *UsersHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.RecordPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleDelete godoc
//
//	@Summary	Delete User
//	@Tags		Users
//	@Security	BearerAuth
//	@Param		id	path	string	true	"User id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeUserError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

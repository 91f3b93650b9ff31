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

// CompaniesHandler serves the /v1/companies CRUD endpoints.
type CompaniesHandler struct {
	CompanyService *service.CompanyService
}

func toCompanyResponse(c domain.Company) api.CompanyResponse {
	return api.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func writeCompanyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrValidation):
		api.ErrInvalidRequest.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("company operation failed", "err", err)
		api.ErrServerError.WriteError(w)
	}
}

// HandleCreate godoc
//
//	@Summary	Create Company
//	@Tags		Companies
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		api.CreateCompanyRequest	true	"New company"
//	@Success	201		{object}	api.CompanyResponse
//	@Failure	400		{object}	api.Error
//	@Router		/v1/companies [post].
func (h *CompaniesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCompanyRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	c, err := h.CompanyService.Create(r.Context(), req.Name)
	if err != nil {
		writeCompanyError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCompanyResponse(c))
}

// HandleList godoc
//
//	@Summary	List Companies
//	@Tags		Companies
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	api.CompanyResponse
//	@Router		/v1/companies [get].
func (h *CompaniesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	companies, err := h.CompanyService.List(r.Context())
	if err != nil {
		writeCompanyError(w, r, err)
		return
	}

	out := make([]api.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Company
//	@Tags		Companies
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Company id"
//	@Success	200	{object}	api.CompanyResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/companies/{id} [get].
func (h *CompaniesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CompanyService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCompanyError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCompanyResponse(c))
}

// HandleUpdate godoc
//
//	@Summary	Rename Company
//	@Tags		Companies
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Company id"
//	@Param		body	body		api.UpdateCompanyRequest	true	"New name"
//	@Success	200		{object}	api.CompanyResponse
//	@Failure	404		{object}	api.Error
//	@Router		/v1/companies/{id} [put].
func (h *CompaniesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateCompanyRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	c, err := h.CompanyService.Rename(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeCompanyError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCompanyResponse(c))
}

// HandleDelete godoc
//
//	@Summary	Delete Company
//	@Tags		Companies
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Company id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/companies/{id} [delete].
func (h *CompaniesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CompanyService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeCompanyError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

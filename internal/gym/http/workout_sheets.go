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

// WorkoutSheetsHandler serves the /v1/workout-sheets endpoints, including
// the workouts inside a sheet and the user links.
type WorkoutSheetsHandler struct {
	WorkoutSheetService *service.WorkoutSheetService
}

func toSheetResponse(s domain.WorkoutSheet) api.WorkoutSheetResponse {
	return api.WorkoutSheetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Type:      string(s.Type),
		IsActive:  s.IsActive,
		CompanyID: s.CompanyID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toWorkoutResponse(wk domain.Workout) api.WorkoutResponse {
	return api.WorkoutResponse{
		ID:             wk.ID,
		Name:           wk.Name,
		WorkoutSheetID: wk.WorkoutSheetID,
		CreatedAt:      wk.CreatedAt,
		UpdatedAt:      wk.UpdatedAt,
	}
}

func writeSheetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrValidation):
		api.ErrInvalidRequest.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("workout sheet operation failed", "err", err)
		api.ErrServerError.WriteError(w)
	}
}

// HandleCreate godoc
//
//	@Summary	Create Workout Sheet
//	@Tags		WorkoutSheets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		api.CreateWorkoutSheetRequest	true	"New sheet"
//	@Success	201		{object}	api.WorkoutSheetResponse
//	@Failure	400		{object}	api.Error
//	@Router		/v1/workout-sheets [post].
func (h *WorkoutSheetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateWorkoutSheetRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	s, err := h.WorkoutSheetService.Create(r.Context(), service.WorkoutSheetParams{
		Name:      req.Name,
		Type:      req.Type,
		IsActive:  true,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSheetResponse(s))
}

// HandleList godoc
//
//	@Summary	List Workout Sheets
//	@Tags		WorkoutSheets
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	api.WorkoutSheetResponse
//	@Router		/v1/workout-sheets [get].
func (h *WorkoutSheetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.WorkoutSheetService.List(r.Context())
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	h.writeSheets(w, sheets)
}

// HandleListByUser godoc
//
//	@Summary	List a User's Workout Sheets
//	@Tags		WorkoutSheets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"User id"
//	@Success	200	{array}	api.WorkoutSheetResponse
//	@Router		/v1/users/{id}/workout-sheets [get].
func (h *WorkoutSheetsHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.WorkoutSheetService.ListByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	h.writeSheets(w, sheets)
}

func (h *WorkoutSheetsHandler) writeSheets(w http.ResponseWriter, sheets []domain.WorkoutSheet) {
	out := make([]api.WorkoutSheetResponse, 0, len(sheets))
	for _, s := range sheets {
		out = append(out, toSheetResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Workout Sheet
//	@Tags		WorkoutSheets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Sheet id"
//	@Success	200	{object}	api.WorkoutSheetResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/workout-sheets/{id} [get].
func (h *WorkoutSheetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.WorkoutSheetService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSheetResponse(s))
}

// HandleUpdate godoc
//
//	@Summary	Update Workout Sheet
//	@Tags		WorkoutSheets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Sheet id"
//	@Param		body	body		api.UpdateWorkoutSheetRequest	true	"Fields to change"
//	@Success	200		{object}	api.WorkoutSheetResponse
//	@Failure	404		{object}	api.Error
//	@Router		/v1/workout-sheets/{id} [put].
func (h *WorkoutSheetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateWorkoutSheetRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	current, err := h.WorkoutSheetService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}

	params := service.WorkoutSheetParams{
		Name:      current.Name,
		Type:      string(current.Type),
		IsActive:  current.IsActive,
		CompanyID: current.CompanyID,
	}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Type != nil {
		params.Type = *req.Type
	}
	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}

	s, err := h.WorkoutSheetService.Update(r.Context(), current.ID, params)
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSheetResponse(s))
}

// HandleDelete godoc
//
//	@Summary	Delete Workout Sheet
//	@Tags		WorkoutSheets
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Sheet id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/workout-sheets/{id} [delete].
func (h *WorkoutSheetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.WorkoutSheetService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeSheetError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListWorkouts godoc
//
//	@Summary	List Workouts in a Sheet
//	@Tags		WorkoutSheets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Sheet id"
//	@Success	200	{array}	api.WorkoutResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/workout-sheets/{id}/workouts [get].
func (h *WorkoutSheetsHandler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.WorkoutSheetService.ListWorkouts(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}

	out := make([]api.WorkoutResponse, 0, len(workouts))
	for _, wk := range workouts {
		out = append(out, toWorkoutResponse(wk))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAddWorkout godoc
//
//	@Summary	Add Workout to a Sheet
//	@Tags		WorkoutSheets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Sheet id"
//	@Param		body	body		api.CreateWorkoutRequest	true	"New workout"
//	@Success	201		{object}	api.WorkoutResponse
//	@Failure	404		{object}	api.Error
//	@Router		/v1/workout-sheets/{id}/workouts [post].
func (h *WorkoutSheetsHandler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	var req api.CreateWorkoutRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	wk, err := h.WorkoutSheetService.AddWorkout(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toWorkoutResponse(wk))
}

// HandleLinkUser godoc
//
//	@Summary	Assign Sheet to User
//	@Tags		WorkoutSheets
//	@Security	BearerAuth
//	@Param		id		path	string	true	"Sheet id"
//	@Param		userID	path	string	true	"User id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/workout-sheets/{id}/users/{userID} [post].
func (h *WorkoutSheetsHandler) HandleLinkUser(w http.ResponseWriter, r *http.Request) {
	err := h.WorkoutSheetService.LinkUser(r.Context(), r.PathValue("id"), r.PathValue("userID"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlinkUser godoc
//
//	@Summary	Unassign Sheet from User
//	@Tags		WorkoutSheets
//	@Security	BearerAuth
//	@Param		id		path	string	true	"Sheet id"
//	@Param		userID	path	string	true	"User id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/workout-sheets/{id}/users/{userID} [delete].
func (h *WorkoutSheetsHandler) HandleUnlinkUser(w http.ResponseWriter, r *http.Request) {
	err := h.WorkoutSheetService.UnlinkUser(r.Context(), r.PathValue("id"), r.PathValue("userID"))
	if err != nil {
		writeSheetError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

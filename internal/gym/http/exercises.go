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

// ExercisesHandler serves the /v1/exercises CRUD endpoints.
type ExercisesHandler struct {
	ExerciseService *service.ExerciseService
}

func toExerciseResponse(e domain.Exercise) api.ExerciseResponse {
	return api.ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Reps:        e.Reps,
		Sets:        e.Sets,
		MuscleGroup: string(e.MuscleGroup),
		RestPeriod:  e.RestPeriod,
		VideoLink:   e.VideoLink,
		WorkoutID:   e.WorkoutID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func writeExerciseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrValidation):
		api.ErrInvalidRequest.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("exercise operation failed", "err", err)
		api.ErrServerError.WriteError(w)
	}
}

// HandleCreate godoc
//
//	@Summary	Create Exercise
//	@Tags		Exercises
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		api.CreateExerciseRequest	true	"New exercise"
//	@Success	201		{object}	api.ExerciseResponse
//	@Failure	400		{object}	api.Error
//	@Router		/v1/exercises [post].
func (h *ExercisesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateExerciseRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	e, err := h.ExerciseService.Create(r.Context(), service.ExerciseParams{
		Name:        req.Name,
		Reps:        req.Reps,
		Sets:        req.Sets,
		MuscleGroup: req.MuscleGroup,
		RestPeriod:  req.RestPeriod,
		VideoLink:   req.VideoLink,
		WorkoutID:   req.WorkoutID,
	})
	if err != nil {
		writeExerciseError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toExerciseResponse(e))
}

// HandleList godoc
//
//	@Summary	List Exercises
//	@Tags		Exercises
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	api.ExerciseResponse
//	@Router		/v1/exercises [get].
func (h *ExercisesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.ExerciseService.List(r.Context())
	if err != nil {
		writeExerciseError(w, r, err)
		return
	}

	out := make([]api.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toExerciseResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Exercise
//	@Tags		Exercises
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Exercise id"
//	@Success	200	{object}	api.ExerciseResponse
//	@Failure	404	{object}	api.Error
//	@Router		/v1/exercises/{id} [get].
func (h *ExercisesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.ExerciseService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeExerciseError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExerciseResponse(e))
}

// HandleUpdate godoc
//
//	@Summary	Update Exercise
//	@Tags		Exercises
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Exercise id"
//	@Param		body	body		api.UpdateExerciseRequest	true	"Fields to change"
//	@Success	200		{object}	api.ExerciseResponse
//	@Failure	404		{object}	api.Error
//	@Router		/v1/exercises/{id} [put].
func (h *ExercisesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateExerciseRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		api.ErrInvalidJSONBody.WriteError(w)
		return
	}

	// Partial update: start from the current record and overlay what the
	// request actually set.
	current, err := h.ExerciseService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeExerciseError(w, r, err)
		return
	}

	params := service.ExerciseParams{
		Name:        current.Name,
		Reps:        current.Reps,
		Sets:        current.Sets,
		MuscleGroup: string(current.MuscleGroup),
		RestPeriod:  current.RestPeriod,
		VideoLink:   current.VideoLink,
		WorkoutID:   current.WorkoutID,
	}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Reps != nil {
		params.Reps = *req.Reps
	}
	if req.Sets != nil {
		params.Sets = *req.Sets
	}
	if req.MuscleGroup != nil {
		params.MuscleGroup = *req.MuscleGroup
	}
	if req.RestPeriod != nil {
		params.RestPeriod = *req.RestPeriod
	}
	if req.VideoLink != nil {
		params.VideoLink = *req.VideoLink
	}

	e, err := h.ExerciseService.Update(r.Context(), current.ID, params)
	if err != nil {
		writeExerciseError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExerciseResponse(e))
}

// HandleDelete godoc
//
//	@Summary	Delete Exercise
//	@Tags		Exercises
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Exercise id"
//	@Success	204
//	@Failure	404	{object}	api.Error
//	@Router		/v1/exercises/{id} [delete].
func (h *ExercisesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ExerciseService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeExerciseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

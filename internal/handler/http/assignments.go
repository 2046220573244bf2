package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/internal/utils"
	"github.com/studysesh/study-sesh/models"
)

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	assignments, err := h.services.AssignmentService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("assignment listing failed")
		utils.WriteError(w, "Database error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, assignments, http.StatusOK)
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var assignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	assignment.UserID = userID

	created, err := h.services.AssignmentService.Create(ctx, assignment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoAssignmentTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("assignment creation failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var assignment models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	assignment.ID = id
	assignment.UserID = userID

	updated, err := h.services.AssignmentService.Update(ctx, assignment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoAssignmentTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Assignment not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("assignment update failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		utils.WriteError(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err = h.services.AssignmentService.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Assignment not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("assignment deletion failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

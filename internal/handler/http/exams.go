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

func (h *Handler) listTests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	tests, err := h.services.TestService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("test listing failed")
		utils.WriteError(w, "Database error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tests, http.StatusOK)
}

func (h *Handler) createTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var test models.Test
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	test.UserID = userID

	created, err := h.services.TestService.Create(ctx, test)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoTestTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("test creation failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateTest(w http.ResponseWriter, r *http.Request) {
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

	var test models.Test
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	test.ID = id
	test.UserID = userID

	updated, err := h.services.TestService.Update(ctx, test)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoTestTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Test not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("test update failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTest(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.TestService.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Test not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("test deletion failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

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

// Subject handlers. The owner always comes from the verified token in the
// request context; ids in payloads are ignored in favour of the route.

func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	subjects, err := h.services.SubjectService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("subject listing failed")
		utils.WriteError(w, "Database error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, subjects, http.StatusOK)
}

func (h *Handler) createSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var subject models.Subject
	if err := json.NewDecoder(r.Body).Decode(&subject); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	subject.UserID = userID

	created, err := h.services.SubjectService.Create(ctx, subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoSubjectName):
			utils.WriteError(w, "Name is required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("subject creation failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateSubject(w http.ResponseWriter, r *http.Request) {
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

	var subject models.Subject
	if err := json.NewDecoder(r.Body).Decode(&subject); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	subject.ID = id
	subject.UserID = userID

	updated, err := h.services.SubjectService.Update(ctx, subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoSubjectName):
			utils.WriteError(w, "Name is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Subject not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("subject update failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSubject(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.SubjectService.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Subject not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("subject deletion failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

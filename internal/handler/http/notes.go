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

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("note listing failed")
		utils.WriteError(w, "Database error", http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.UserID = userID

	created, err := h.services.NoteService.Create(ctx, note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoNoteTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("note creation failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
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

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.ID = id
	note.UserID = userID

	updated, err := h.services.NoteService.Update(ctx, note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoNoteTitle):
			utils.WriteError(w, "Title is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("note update failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.NoteService.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			utils.WriteError(w, "Note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("note deletion failed")
			utils.WriteError(w, "Database error", http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

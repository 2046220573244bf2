package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/internal/utils"
	"github.com/studysesh/study-sesh/models"
)

// askAssistant relays the caller's chat transcript to the completion
// provider. Provider failures answer 500 with the upstream detail in the
// "details" field; the server never retries.
func (h *Handler) askAssistant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Messages array required", http.StatusBadRequest)
		return
	}

	reply, err := h.services.AssistantService.Ask(ctx, request.Messages)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoMessages):
			utils.WriteError(w, "Messages array required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("assistant relay failed")
			utils.WriteErrorDetails(w, "AI error", err.Error(), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.AskResponse{Response: reply}, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// handleAddSubscriber appends an email to the notification list. A
// duplicate is a 400 with a message, not a server error.
func (h *handler) handleAddSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}

	if err := h.subscribers.Add(ctx, body.Email); err != nil {
		writeErrorMessage(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Thank you for subscribing!",
	})
}

// handleSendFeedback relays a feedback message
func (h *handler) handleSendFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body model.Feedback
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}

	if err := h.feedback.Send(ctx, &body); err != nil {
		writeErrorMessage(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "Feedback sent successfully",
	})
}

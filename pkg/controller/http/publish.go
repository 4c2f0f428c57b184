package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

type savePayload struct {
	FileName     string `json:"fileName"`
	ImageDataURL string `json:"imageDataUrl"`
}

// handleSaveFullWall persists a pre-rendered full wall image (.jpg)
func (h *handler) handleSaveFullWall(w http.ResponseWriter, r *http.Request) {
	h.saveWall(w, r, model.WallKindFull, "Full wall image saved successfully")
}

// handleSaveAvatarWall persists a pre-rendered avatar wall image (.png)
func (h *handler) handleSaveAvatarWall(w http.ResponseWriter, r *http.Request) {
	h.saveWall(w, r, model.WallKindAvatars, "Avatar wall image saved successfully")
}

func (h *handler) saveWall(w http.ResponseWriter, r *http.Request, kind model.WallKind, successMessage string) {
	ctx := r.Context()

	var body savePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}

	artifact, err := h.walls.Publish(ctx, kind, body.FileName, body.ImageDataURL)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"url":     artifact.PublicURL,
		"message": successMessage,
	})
}

// handleGenerateWall runs the full server-side pipeline for one repo
func (h *handler) handleGenerateWall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Repo string `json:"repo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}
	if body.Repo == "" {
		writeError(ctx, w, goerr.New("repo not specified", goerr.T(types.TagInvalidInput)))
		return
	}

	build, err := h.walls.Generate(ctx, body.Repo)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, build)
}

package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// handleWall redirects to the latest published wall image for the repo.
// 400 without a repo parameter, 404 when nothing was ever published.
func (h *handler) handleWall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repo := r.URL.Query().Get("repo")
	if repo == "" {
		writeError(ctx, w, goerr.New("repo parameter is missing", goerr.T(types.TagInvalidInput)))
		return
	}
	onlyAvatars := r.URL.Query().Get("onlyAvatars") == "true"

	req, err := model.NewWallRequest(repo, onlyAvatars)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	url, err := h.walls.Resolve(ctx, req)
	if err != nil {
		if goerr.HasTag(err, types.TagNotFound) {
			writeError(ctx, w, goerr.New("image not found", goerr.T(types.TagNotFound)))
			return
		}
		writeError(ctx, w, err)
		return
	}

	ctxlog.From(ctx).Debug("Redirecting to wall image", "repo", repo, "url", url)
	http.Redirect(w, r, url, http.StatusFound)
}

// handleEmbed returns the README snippets for a repository
func (h *handler) handleEmbed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repo := r.URL.Query().Get("repo")
	if repo == "" {
		writeError(ctx, w, goerr.New("repo parameter is missing", goerr.T(types.TagInvalidInput)))
		return
	}

	fullReq, err := model.NewWallRequest(repo, false)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	avatarReq, _ := model.NewWallRequest(repo, true)

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"wall":       fullReq.EmbedMarkup(h.baseURL),
		"avatarWall": avatarReq.EmbedMarkup(h.baseURL),
	})
}

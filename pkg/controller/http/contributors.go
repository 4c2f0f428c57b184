package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// handleFetchContributors returns the enriched contributor list for a repo
func (h *handler) handleFetchContributors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		RepoURL string `json:"repoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}
	if body.RepoURL == "" {
		writeErrorMessage(ctx, w, goerr.New("repository URL not provided", goerr.T(types.TagInvalidInput)))
		return
	}

	contributors, err := h.contributors.FetchContributors(ctx, body.RepoURL)
	if err != nil {
		writeErrorMessage(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, contributors)
}

// handleGithubRepo proxies repository metadata
func (h *handler) handleGithubRepo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Repo string `json:"repo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorMessage(ctx, w, goerr.Wrap(err, "invalid JSON body", goerr.T(types.TagInvalidInput)))
		return
	}
	if body.Repo == "" {
		writeErrorMessage(ctx, w, goerr.New("repository not specified", goerr.T(types.TagInvalidInput)))
		return
	}

	repo, err := h.contributors.GetRepository(ctx, body.Repo)
	if err != nil {
		writeErrorMessage(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, repo)
}

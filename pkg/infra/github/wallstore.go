package github

import (
	"context"
	"net/http"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// WallStore persists wall images as files in a git repository via the
// contents API. The blob SHA of the current file acts as the version
// token: updates must present it, and a stale token fails the write.
// Published files are served through a jsDelivr mirror of the repository.
type WallStore struct {
	gh      *github.Client
	http    *http.Client
	owner   string
	repo    string
	cdnBase string
}

// NewWallStore creates a store writing to owner/repo. cdnBase is the public
// mirror prefix, e.g. "https://cdn.jsdelivr.net/gh/owner/repo".
func NewWallStore(token, owner, repo, cdnBase string) *WallStore {
	return &WallStore{
		gh:      github.NewClient(nil).WithAuthToken(token),
		http:    &http.Client{Timeout: 15 * time.Second},
		owner:   owner,
		repo:    repo,
		cdnBase: cdnBase,
	}
}

// Head looks up the file at path and returns its current blob SHA
func (s *WallStore) Head(ctx context.Context, path string) (*model.Artifact, error) {
	file, _, resp, err := s.gh.Repositories.GetContents(ctx, s.owner, s.repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(err, "wall image not found",
				goerr.V("path", path), goerr.T(types.TagNotFound))
		}
		return nil, upstreamError(err, resp, "failed to look up wall image", goerr.V("path", path))
	}
	if file == nil {
		return nil, goerr.New("path is not a file", goerr.V("path", path), goerr.T(types.TagNotFound))
	}

	return &model.Artifact{
		Path:         path,
		VersionToken: file.GetSHA(),
		PublicURL:    s.publicURL(path),
	}, nil
}

// Put creates or updates the file at path. An empty versionToken creates;
// a non-empty token updates in place and conflicts when stale.
func (s *WallStore) Put(ctx context.Context, path string, content []byte, contentType, message, versionToken string) (*model.Artifact, error) {
	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
	}

	var res *github.RepositoryContentResponse
	var resp *github.Response
	var err error
	if versionToken != "" {
		opts.SHA = github.Ptr(versionToken)
		res, resp, err = s.gh.Repositories.UpdateFile(ctx, s.owner, s.repo, path, opts)
	} else {
		res, resp, err = s.gh.Repositories.CreateFile(ctx, s.owner, s.repo, path, opts)
	}
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity) {
			return nil, goerr.Wrap(err, "wall image version token is stale",
				goerr.V("path", path), goerr.T(types.TagConflict))
		}
		return nil, upstreamError(err, resp, "failed to save wall image", goerr.V("path", path))
	}

	artifact := &model.Artifact{
		Path:      path,
		PublicURL: s.publicURL(path),
	}
	if res != nil && res.Content != nil {
		artifact.VersionToken = res.Content.GetSHA()
	}
	return artifact, nil
}

// ResolveURL probes the CDN mirror for the file and returns its URL. A 404
// from the mirror means no wall was ever published for the path.
func (s *WallStore) ResolveURL(ctx context.Context, path string) (string, error) {
	url := s.publicURL(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create CDN probe request", goerr.V("url", url))
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "CDN probe failed",
			goerr.V("url", url), goerr.T(types.TagUpstream))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return url, nil
	case resp.StatusCode == http.StatusNotFound:
		return "", goerr.New("wall image not found on CDN",
			goerr.V("url", url), goerr.T(types.TagNotFound))
	default:
		return "", goerr.New("unexpected CDN probe status",
			goerr.V("url", url), goerr.V("upstream_status", resp.StatusCode),
			goerr.T(types.TagUpstream))
	}
}

func (s *WallStore) publicURL(path string) string {
	return s.cdnBase + "/" + path
}

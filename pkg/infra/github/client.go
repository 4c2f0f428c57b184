package github

import (
	"context"
	"image"
	"net/http"
	"time"

	// avatar payloads arrive as PNG, JPEG or GIF depending on the account
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// Client wraps the GitHub REST API for contributor and repository reads
type Client struct {
	gh   *github.Client
	http *http.Client
}

// NewClient creates a GitHub client authenticated with a personal access token
func NewClient(token string) *Client {
	return &Client{
		gh:   github.NewClient(nil).WithAuthToken(token),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListContributors returns up to limit contributors for owner/repo in the
// upstream order (descending contribution count).
func (c *Client) ListContributors(ctx context.Context, owner, repo string, limit int) ([]*model.Contributor, error) {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	}
	contributors, resp, err := c.gh.Repositories.ListContributors(ctx, owner, repo, opts)
	if err != nil {
		return nil, upstreamError(err, resp, "failed to list contributors",
			goerr.V("owner", owner), goerr.V("repo", repo))
	}

	result := make([]*model.Contributor, 0, len(contributors))
	for _, gc := range contributors {
		result = append(result, &model.Contributor{
			Login:         gc.GetLogin(),
			AvatarURL:     gc.GetAvatarURL(),
			Contributions: gc.GetContributions(),
			HTMLURL:       gc.GetHTMLURL(),
		})
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// GetUserProfile fetches the enrichment fields for a single user
func (c *Client) GetUserProfile(ctx context.Context, login string) (name, bio, location *string, err error) {
	user, resp, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return nil, nil, nil, upstreamError(err, resp, "failed to fetch user profile",
			goerr.V("login", login))
	}
	return user.Name, user.Bio, user.Location, nil
}

// GetRepository fetches repository metadata
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*model.Repository, error) {
	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, upstreamError(err, resp, "failed to fetch repository",
			goerr.V("owner", owner), goerr.V("repo", repo))
	}
	return &model.Repository{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		HTMLURL:     r.GetHTMLURL(),
	}, nil
}

// FetchAvatar downloads and decodes one avatar image
func (c *Client) FetchAvatar(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create avatar request", goerr.V("url", url))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download avatar",
			goerr.V("url", url), goerr.T(types.TagUpstream))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected avatar response status",
			goerr.V("url", url), goerr.V("upstream_status", resp.StatusCode),
			goerr.T(types.TagUpstream))
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode avatar image", goerr.V("url", url))
	}
	return img, nil
}

// upstreamError wraps a GitHub API error, recording the upstream status
// and message so the boundary can forward them.
func upstreamError(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	options = append(options, goerr.T(types.TagUpstream))
	if resp != nil {
		options = append(options, goerr.V("upstream_status", resp.StatusCode))
	}
	if ghErr, ok := err.(*github.ErrorResponse); ok && ghErr.Message != "" {
		options = append(options, goerr.V("upstream_message", ghErr.Message))
	}
	return goerr.Wrap(err, msg, options...)
}

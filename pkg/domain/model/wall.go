package model

import (
	"fmt"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// WallKind selects which of the two wall variants is meant
type WallKind string

const (
	// WallKindFull is the opaque wall with usernames and contribution counts
	WallKindFull WallKind = "full"
	// WallKindAvatars is the transparent avatars-only wall
	WallKindAvatars WallKind = "avatars"
)

// MIMEType returns the image format the variant is encoded with
func (k WallKind) MIMEType() string {
	if k == WallKindAvatars {
		return "image/png"
	}
	return "image/jpeg"
}

// Extension returns the file extension including the dot
func (k WallKind) Extension() string {
	if k == WallKindAvatars {
		return ".png"
	}
	return ".jpg"
}

// WallRequest identifies one wall: a repository plus the variant flag.
// It is the single source of the deterministic artifact naming scheme.
type WallRequest struct {
	Repo        string `json:"repo"`
	OnlyAvatars bool   `json:"onlyAvatars"`
}

// NewWallRequest validates the repository identifier shape (two non-empty
// segments separated by a slash) and returns the request.
func NewWallRequest(repo string, onlyAvatars bool) (*WallRequest, error) {
	if _, _, err := SplitRepo(repo); err != nil {
		return nil, err
	}
	return &WallRequest{Repo: repo, OnlyAvatars: onlyAvatars}, nil
}

// SplitRepo splits an "owner/name" identifier into its segments
func SplitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", goerr.New("invalid repository identifier, expected owner/name",
			goerr.V("repo", repo), goerr.T(types.TagInvalidInput))
	}
	return owner, name, nil
}

// Kind returns the wall variant for this request
func (r *WallRequest) Kind() WallKind {
	if r.OnlyAvatars {
		return WallKindAvatars
	}
	return WallKindFull
}

// Sanitized lowercases the identifier and turns slashes into dashes. The
// transform is idempotent: applying it to its own output is a no-op.
func (r *WallRequest) Sanitized() string {
	return SanitizeRepo(r.Repo)
}

// SanitizeRepo derives the artifact-safe base name for a repository
func SanitizeRepo(repo string) string {
	return strings.ToLower(strings.ReplaceAll(repo, "/", "-"))
}

// FileName is the deterministic artifact file name for this request:
// "<sanitized>.jpg" for the full wall, "<sanitized>(avatars).png" otherwise.
func (r *WallRequest) FileName() string {
	if r.OnlyAvatars {
		return r.Sanitized() + "(avatars).png"
	}
	return r.Sanitized() + ".jpg"
}

// Path is the artifact path inside the walls store
func (r *WallRequest) Path() string {
	return path.Join(types.WallDir, r.FileName())
}

// EmbedMarkup returns the README snippet users paste to embed this wall.
// baseURL is the public origin of this service, e.g. "https://contri.buzz".
func (r *WallRequest) EmbedMarkup(baseURL string) string {
	wallURL := fmt.Sprintf("%s/api/wall?repo=%s", baseURL, r.Repo)
	if r.OnlyAvatars {
		wallURL += "&onlyAvatars=true"
	}
	return fmt.Sprintf(`
<h1 align="center">Contributors' Wall</h1>

<a href="https://github.com/%s/graphs/contributors">
    <img src="%s" alt="Contributors' Wall for %s" />
</a>

<br />
<br />

<p align="center">
    Make your Contributors' Wall with <a href="%s/"><i>Contri.Buzz</i></a>
</p>
`, r.Repo, wallURL, r.Repo, baseURL)
}

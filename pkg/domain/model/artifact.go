package model

import "time"

// Artifact is a persisted wall image addressable by its deterministic path.
// VersionToken is the store's revision identifier for the current content
// (a git blob SHA for the contents API, an object generation for GCS); it
// must be echoed back on update so concurrent writers surface as conflicts
// instead of clobbering blindly.
type Artifact struct {
	Path         string `json:"path"`
	VersionToken string `json:"-"`
	PublicURL    string `json:"url"`
}

// WallBuild is the result of one server-side generation run
type WallBuild struct {
	BuildID       string    `json:"buildId"`
	Repo          string    `json:"repo"`
	Contributors  int       `json:"contributors"`
	FullWallURL   string    `json:"fullWallUrl"`
	AvatarWallURL string    `json:"avatarWallUrl"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

package interfaces

import (
	"context"
	"image"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
)

// ContributorSource defines the read side of the upstream code host
type ContributorSource interface {
	// ListContributors returns up to limit contributors ordered by
	// descending contribution count, as provided by the upstream
	ListContributors(ctx context.Context, owner, repo string, limit int) ([]*model.Contributor, error)

	// GetUserProfile fetches the profile fields used for enrichment
	GetUserProfile(ctx context.Context, login string) (name, bio, location *string, err error)

	// GetRepository fetches repository metadata
	GetRepository(ctx context.Context, owner, repo string) (*model.Repository, error)

	// FetchAvatar downloads and decodes a contributor avatar
	FetchAvatar(ctx context.Context, url string) (image.Image, error)
}

// ArtifactStore persists wall images under deterministic paths
type ArtifactStore interface {
	// Head looks up the artifact at path and returns its current version
	// token. A not_found tagged error means nothing was ever published.
	Head(ctx context.Context, path string) (*model.Artifact, error)

	// Put writes content at path. versionToken must carry the token from
	// Head when overwriting and be empty when creating.
	Put(ctx context.Context, path string, content []byte, contentType, message, versionToken string) (*model.Artifact, error)

	// ResolveURL returns the public URL of the artifact at path, or a
	// not_found tagged error when no artifact exists there.
	ResolveURL(ctx context.Context, path string) (string, error)
}

// SubscriberStore holds the mailing list document
type SubscriberStore interface {
	Load(ctx context.Context) (*model.SubscriberList, error)
	Save(ctx context.Context, list *model.SubscriberList) error
}

// MailSender relays feedback messages by email
type MailSender interface {
	SendFeedback(ctx context.Context, fb *model.Feedback) error
}

// Notifier mirrors feedback to a chat channel
type Notifier interface {
	NotifyFeedback(ctx context.Context, fb *model.Feedback) error
}

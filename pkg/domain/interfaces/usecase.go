package interfaces

import (
	"context"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
)

// ContributorUseCase fetches and enriches contributor data
type ContributorUseCase interface {
	// FetchContributors returns up to 100 enriched contributors for the
	// repository. A failed enrichment keeps the contributor with primary
	// fields only; it never fails the batch.
	FetchContributors(ctx context.Context, repo string) ([]*model.Contributor, error)

	// GetRepository proxies repository metadata
	GetRepository(ctx context.Context, repo string) (*model.Repository, error)
}

// WallUseCase owns the generate/publish/resolve pipeline
type WallUseCase interface {
	// Generate runs the full pipeline: fetch, render both variants,
	// compress, and publish each under its deterministic path.
	Generate(ctx context.Context, repo string) (*model.WallBuild, error)

	// Publish validates and persists one pre-rendered wall image data URL
	Publish(ctx context.Context, kind model.WallKind, fileName, imageDataURL string) (*model.Artifact, error)

	// Resolve returns the public URL of the latest published wall for the
	// request, or a not_found tagged error if none was ever published.
	Resolve(ctx context.Context, req *model.WallRequest) (string, error)
}

// SubscriberUseCase manages the mailing list
type SubscriberUseCase interface {
	// Add appends the email, rejecting duplicates with a duplicate tag
	Add(ctx context.Context, email string) error
}

// FeedbackUseCase relays feedback messages
type FeedbackUseCase interface {
	Send(ctx context.Context, fb *model.Feedback) error
}

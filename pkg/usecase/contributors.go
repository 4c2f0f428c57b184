package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"golang.org/x/sync/errgroup"

	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// enrichLimit bounds the parallel per-user profile lookups
const enrichLimit = 8

type contributorUseCase struct {
	source interfaces.ContributorSource
}

// NewContributors creates a ContributorUseCase backed by the given source
func NewContributors(source interfaces.ContributorSource) interfaces.ContributorUseCase {
	return &contributorUseCase{source: source}
}

// FetchContributors lists up to 100 contributors and enriches each with
// profile fields. Enrichment runs in a bounded pool; a failed lookup keeps
// the contributor with primary fields only and never fails the batch.
func (uc *contributorUseCase) FetchContributors(ctx context.Context, repo string) ([]*model.Contributor, error) {
	logger := ctxlog.From(ctx)

	owner, name, err := model.SplitRepo(repo)
	if err != nil {
		return nil, err
	}

	contributors, err := uc.source.ListContributors(ctx, owner, name, types.MaxContributors)
	if err != nil {
		return nil, err
	}

	logger.Info("Fetched contributor list",
		"repo", repo,
		"count", len(contributors),
	)

	var eg errgroup.Group
	eg.SetLimit(enrichLimit)
	for _, c := range contributors {
		eg.Go(func() error {
			profileName, bio, location, err := uc.source.GetUserProfile(ctx, c.Login)
			if err != nil {
				logger.Warn("Profile enrichment failed, keeping primary fields",
					"login", c.Login,
					"error", err,
				)
				return nil
			}
			c.Name = profileName
			c.Bio = bio
			c.Location = location
			return nil
		})
	}
	// goroutines never return errors; Wait only synchronizes
	_ = eg.Wait()

	return contributors, nil
}

// GetRepository proxies repository metadata for the API
func (uc *contributorUseCase) GetRepository(ctx context.Context, repo string) (*model.Repository, error) {
	owner, name, err := model.SplitRepo(repo)
	if err != nil {
		return nil, err
	}
	return uc.source.GetRepository(ctx, owner, name)
}

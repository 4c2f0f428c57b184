package cli

import (
	"context"

	"github.com/hemanth0525/contribuzz/pkg/cli/config"
	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/infra/gcs"
	githubinfra "github.com/hemanth0525/contribuzz/pkg/infra/github"
	"github.com/hemanth0525/contribuzz/pkg/usecase"
)

// buildWallStack wires the GitHub client, artifact store and the use cases
// shared by the serve and generate commands.
func buildWallStack(ctx context.Context, githubCfg *config.GitHub, artifactCfg *config.Artifact) (interfaces.WallUseCase, interfaces.ContributorUseCase, error) {
	if err := artifactCfg.Validate(); err != nil {
		return nil, nil, err
	}

	client := githubinfra.NewClient(githubCfg.Token)

	var store interfaces.ArtifactStore
	switch artifactCfg.Store {
	case config.ArtifactStoreGCS:
		gcsStore, err := gcs.New(ctx, artifactCfg.GCSBucket)
		if err != nil {
			return nil, nil, err
		}
		store = gcsStore
	default:
		token := githubCfg.WallsToken
		if token == "" {
			token = githubCfg.Token
		}
		store = githubinfra.NewWallStore(token, githubCfg.WallsOwner, githubCfg.WallsRepo, githubCfg.ResolveCDNBase())
	}

	contributorUC := usecase.NewContributors(client)
	wallUC := usecase.NewWall(contributorUC, client, store)

	return wallUC, contributorUC, nil
}

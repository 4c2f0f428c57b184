package usecase

import (
	"context"
	"encoding/base64"
	"image"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
	"github.com/hemanth0525/contribuzz/pkg/renderer"
)

// avatarFetchLimit bounds the parallel avatar downloads per build
const avatarFetchLimit = 8

type wallUseCase struct {
	contributors interfaces.ContributorUseCase
	source       interfaces.ContributorSource
	store        interfaces.ArtifactStore
}

// NewWall creates the wall generation pipeline
func NewWall(
	contributors interfaces.ContributorUseCase,
	source interfaces.ContributorSource,
	store interfaces.ArtifactStore,
) interfaces.WallUseCase {
	return &wallUseCase{
		contributors: contributors,
		source:       source,
		store:        store,
	}
}

// Generate runs the whole pipeline for one repository: fetch and enrich
// contributors, render both wall variants, compress each under the byte
// budget, and publish both under their deterministic paths. Two concurrent
// builds for the same repository are not coordinated; whichever publish
// lands last wins.
func (uc *wallUseCase) Generate(ctx context.Context, repo string) (*model.WallBuild, error) {
	buildID := uuid.NewString()
	logger := ctxlog.From(ctx).With("build_id", buildID, "repo", repo)
	ctx = ctxlog.With(ctx, logger)

	fullReq, err := model.NewWallRequest(repo, false)
	if err != nil {
		return nil, err
	}
	avatarReq, err := model.NewWallRequest(repo, true)
	if err != nil {
		return nil, err
	}

	contributors, err := uc.contributors.FetchContributors(ctx, repo)
	if err != nil {
		return nil, err
	}

	avatars := uc.fetchAvatars(ctx, contributors)

	fullWall, err := renderer.FullWall(contributors, avatars)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render full wall")
	}
	avatarWall, err := renderer.AvatarWall(contributors, avatars)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render avatar wall")
	}

	logger.Info("Rendered wall images",
		"contributors", len(contributors),
		"full_size", []int{fullWall.Width(), fullWall.Height()},
		"avatar_size", []int{avatarWall.Width(), avatarWall.Height()},
	)

	fullDataURL, err := renderer.CompressWall(fullWall, types.MaxImageBytes)
	if err != nil {
		return nil, err
	}
	avatarDataURL, err := renderer.CompressWall(avatarWall, types.MaxImageBytes)
	if err != nil {
		return nil, err
	}

	fullArtifact, err := uc.Publish(ctx, model.WallKindFull, fullReq.FileName(), fullDataURL)
	if err != nil {
		return nil, err
	}
	avatarArtifact, err := uc.Publish(ctx, model.WallKindAvatars, avatarReq.FileName(), avatarDataURL)
	if err != nil {
		return nil, err
	}

	logger.Info("Wall build complete",
		"full_url", fullArtifact.PublicURL,
		"avatar_url", avatarArtifact.PublicURL,
	)

	return &model.WallBuild{
		BuildID:       buildID,
		Repo:          repo,
		Contributors:  len(contributors),
		FullWallURL:   fullArtifact.PublicURL,
		AvatarWallURL: avatarArtifact.PublicURL,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// fetchAvatars downloads avatar images in a bounded pool. A failed
// download leaves a nil entry so the renderer degrades that cell to a
// placeholder instead of aborting the build.
func (uc *wallUseCase) fetchAvatars(ctx context.Context, contributors []*model.Contributor) []image.Image {
	logger := ctxlog.From(ctx)

	avatars := make([]image.Image, len(contributors))
	var eg errgroup.Group
	eg.SetLimit(avatarFetchLimit)
	for i, c := range contributors {
		eg.Go(func() error {
			img, err := uc.source.FetchAvatar(ctx, c.AvatarURL)
			if err != nil {
				logger.Warn("Avatar download failed, using placeholder",
					"login", c.Login,
					"error", err,
				)
				return nil
			}
			avatars[i] = img
			return nil
		})
	}
	_ = eg.Wait()

	return avatars
}

// Publish validates one wall image data URL and persists it. The prior
// version token (when the artifact already exists) is passed through so
// the store updates in place rather than conflicting with itself.
func (uc *wallUseCase) Publish(ctx context.Context, kind model.WallKind, fileName, imageDataURL string) (*model.Artifact, error) {
	logger := ctxlog.From(ctx)

	if !strings.HasSuffix(fileName, kind.Extension()) {
		return nil, goerr.New("invalid file name for wall kind",
			goerr.V("file_name", fileName), goerr.V("kind", string(kind)),
			goerr.T(types.TagInvalidInput))
	}

	prefix := "data:" + kind.MIMEType() + ";base64,"
	if !strings.HasPrefix(imageDataURL, prefix) {
		return nil, goerr.New("invalid image data URL",
			goerr.V("kind", string(kind)), goerr.T(types.TagInvalidInput))
	}

	encoded := imageDataURL[len(prefix):]
	if decodedSize(encoded) > types.MaxImageBytes {
		return nil, goerr.New("image size exceeds 4.5 MB",
			goerr.V("file_name", fileName), goerr.T(types.TagTooLarge))
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, goerr.Wrap(err, "malformed base64 image content",
			goerr.V("file_name", fileName), goerr.T(types.TagInvalidInput))
	}

	artifactPath := path.Join(types.WallDir, fileName)

	// look up the current version token; absent means first publish
	versionToken := ""
	message := "Upload " + fileName
	if existing, err := uc.store.Head(ctx, artifactPath); err == nil {
		versionToken = existing.VersionToken
		message = "Update " + fileName
	} else if !goerr.HasTag(err, types.TagNotFound) {
		return nil, err
	}

	artifact, err := uc.store.Put(ctx, artifactPath, content, kind.MIMEType(), message, versionToken)
	if err != nil {
		return nil, err
	}

	logger.Info("Published wall image",
		"path", artifactPath,
		"bytes", len(content),
		"updated", versionToken != "",
	)

	return artifact, nil
}

// Resolve returns the public URL of the latest published wall for the request
func (uc *wallUseCase) Resolve(ctx context.Context, req *model.WallRequest) (string, error) {
	return uc.store.ResolveURL(ctx, req.Path())
}

// decodedSize estimates the byte size of base64 content without decoding,
// the same way the save endpoints of the original measured it.
func decodedSize(encoded string) int {
	return int(float64(len(encoded)) * 0.75)
}

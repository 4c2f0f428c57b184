package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/hemanth0525/contribuzz/pkg/cli/config"
)

// manifest is the TOML file format accepted by the generate command.
//
//	[[wall]]
//	repo = "owner/name"
type manifest struct {
	Walls []manifestWall `toml:"wall"`
}

type manifestWall struct {
	Repo string `toml:"repo"`
}

func cmdGenerate() *cli.Command {
	var (
		githubCfg    config.GitHub
		artifactCfg  config.Artifact
		repo         string
		manifestPath string
	)

	flags := append(githubCfg.Flags(), artifactCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository to generate walls for (owner/name)",
			Destination: &repo,
			Sources:     cli.EnvVars("CONTRIBUZZ_REPO"),
		},
		&cli.StringFlag{
			Name:        "manifest",
			Usage:       "TOML manifest listing repositories to generate walls for",
			Destination: &manifestPath,
			Sources:     cli.EnvVars("CONTRIBUZZ_MANIFEST"),
		},
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate and publish contributor walls without the server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			repos, err := collectRepos(repo, manifestPath)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return goerr.New("either --repo or --manifest is required")
			}

			wallUC, _, err := buildWallStack(ctx, &githubCfg, &artifactCfg)
			if err != nil {
				return err
			}

			okMark := color.New(color.FgGreen, color.Bold).Sprint("OK")
			failMark := color.New(color.FgRed, color.Bold).Sprint("FAIL")

			var failed int
			for _, target := range repos {
				build, err := wallUC.Generate(ctx, target)
				if err != nil {
					failed++
					color.New(color.FgWhite).Printf("%s  %s: %v\n", failMark, target, err)
					logger.Error("Wall generation failed",
						slog.String("repo", target),
						slog.Any("error", err),
					)
					continue
				}
				color.New(color.FgWhite).Printf("%s    %s\n", okMark, target)
				color.New(color.Faint).Printf("      %s\n      %s\n", build.FullWallURL, build.AvatarWallURL)
			}

			if failed > 0 {
				return goerr.New("wall generation finished with failures",
					goerr.V("failed", failed),
					goerr.V("total", len(repos)),
				)
			}
			return nil
		},
	}
}

// collectRepos merges the --repo flag and the manifest file into one target
// list, preserving manifest order.
func collectRepos(repo, manifestPath string) ([]string, error) {
	var repos []string
	if repo != "" {
		repos = append(repos, repo)
	}
	if manifestPath == "" {
		return repos, nil
	}

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", manifestPath))
	}
	var m manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest", goerr.V("path", manifestPath))
	}
	for _, w := range m.Walls {
		if w.Repo == "" {
			return nil, goerr.New("manifest entry is missing repo", goerr.V("path", manifestPath))
		}
		repos = append(repos, w.Repo)
	}
	return repos, nil
}

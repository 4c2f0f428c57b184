package config

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

// GitHub holds the GitHub API configuration: a read token for contributor
// data and a write token plus target repository for published wall images.
type GitHub struct {
	Token      string
	WallsToken string
	WallsOwner string
	WallsRepo  string
	CDNBase    string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for contributor and repository reads",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("CONTRIBUZZ_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-walls-token",
			Usage:       "GitHub token with write access to the walls repository",
			Destination: &c.WallsToken,
			Sources:     cli.EnvVars("CONTRIBUZZ_GITHUB_WALLS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-walls-owner",
			Usage:       "Owner of the repository wall images are committed to",
			Destination: &c.WallsOwner,
			Sources:     cli.EnvVars("CONTRIBUZZ_GITHUB_WALLS_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-walls-repo",
			Usage:       "Repository wall images are committed to",
			Destination: &c.WallsRepo,
			Sources:     cli.EnvVars("CONTRIBUZZ_GITHUB_WALLS_REPO"),
		},
		&cli.StringFlag{
			Name:        "github-cdn-base",
			Usage:       "CDN mirror prefix for the walls repository (default: jsDelivr)",
			Destination: &c.CDNBase,
			Sources:     cli.EnvVars("CONTRIBUZZ_GITHUB_CDN_BASE"),
		},
	}
}

// ResolveCDNBase returns the configured CDN prefix, defaulting to the
// jsDelivr mirror of the walls repository.
func (c *GitHub) ResolveCDNBase() string {
	if c.CDNBase != "" {
		return c.CDNBase
	}
	return fmt.Sprintf("https://cdn.jsdelivr.net/gh/%s/%s", c.WallsOwner, c.WallsRepo)
}

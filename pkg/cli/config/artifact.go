package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Artifact store backends
const (
	ArtifactStoreGitHub = "github"
	ArtifactStoreGCS    = "gcs"
)

// Artifact selects and configures the wall artifact store backend
type Artifact struct {
	Store     string
	GCSBucket string
}

// Flags returns CLI flags for artifact store configuration
func (c *Artifact) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "artifact-store",
			Usage:       "Wall artifact store backend (github or gcs)",
			Value:       ArtifactStoreGitHub,
			Destination: &c.Store,
			Sources:     cli.EnvVars("CONTRIBUZZ_ARTIFACT_STORE"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Bucket name for the gcs artifact store",
			Destination: &c.GCSBucket,
			Sources:     cli.EnvVars("CONTRIBUZZ_GCS_BUCKET"),
		},
	}
}

// Validate checks the backend selection is consistent
func (c *Artifact) Validate() error {
	switch c.Store {
	case ArtifactStoreGitHub:
		return nil
	case ArtifactStoreGCS:
		if c.GCSBucket == "" {
			return goerr.New("gcs artifact store requires a bucket name")
		}
		return nil
	default:
		return goerr.New("unknown artifact store", goerr.V("store", c.Store))
	}
}

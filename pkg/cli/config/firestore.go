package config

import "github.com/urfave/cli/v3"

// Firestore holds the subscriber store configuration
type Firestore struct {
	ProjectID       string
	CredentialsFile string
}

// Flags returns CLI flags for Firestore configuration
func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Google Cloud project for the subscriber store",
			Destination: &c.ProjectID,
			Sources:     cli.EnvVars("CONTRIBUZZ_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-credentials",
			Usage:       "Service account credentials file (empty for ADC)",
			Destination: &c.CredentialsFile,
			Sources:     cli.EnvVars("CONTRIBUZZ_FIRESTORE_CREDENTIALS"),
		},
	}
}

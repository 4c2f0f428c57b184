package config

import "github.com/urfave/cli/v3"

// Slack holds the optional feedback mirror configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Incoming webhook URL to mirror feedback to (empty to disable)",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("CONTRIBUZZ_SLACK_WEBHOOK_URL"),
		},
	}
}

package config

import "github.com/urfave/cli/v3"

// SMTP holds the feedback mail relay configuration. An empty host
// disables the relay; the feedback endpoint then reports a server error.
type SMTP struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	To     string
}

// Flags returns CLI flags for SMTP configuration
func (c *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP relay host",
			Destination: &c.Host,
			Sources:     cli.EnvVars("CONTRIBUZZ_SMTP_HOST"),
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP relay port",
			Value:       587,
			Destination: &c.Port,
			Sources:     cli.EnvVars("CONTRIBUZZ_SMTP_PORT"),
		},
		&cli.BoolFlag{
			Name:        "smtp-secure",
			Usage:       "Use implicit TLS (465) instead of STARTTLS",
			Destination: &c.Secure,
			Sources:     cli.EnvVars("CONTRIBUZZ_SMTP_SECURE"),
		},
		&cli.StringFlag{
			Name:        "smtp-user",
			Usage:       "SMTP relay user, also the feedback sender address",
			Destination: &c.User,
			Sources:     cli.EnvVars("CONTRIBUZZ_SMTP_USER"),
		},
		&cli.StringFlag{
			Name:        "smtp-pass",
			Usage:       "SMTP relay password",
			Destination: &c.Pass,
			Sources:     cli.EnvVars("CONTRIBUZZ_SMTP_PASS"),
		},
		&cli.StringFlag{
			Name:        "feedback-to",
			Usage:       "Feedback recipient address",
			Value:       "mail@contri.buzz",
			Destination: &c.To,
			Sources:     cli.EnvVars("CONTRIBUZZ_FEEDBACK_TO"),
		},
	}
}

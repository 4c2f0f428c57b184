package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// Notifier mirrors feedback submissions to a Slack channel via an
// incoming webhook. It is an optional side channel: mail delivery is the
// primary path and does not depend on this.
type Notifier struct {
	webhookURL string
}

// New creates a notifier posting to the given incoming webhook URL
func New(webhookURL string) *Notifier {
	return &Notifier{webhookURL: webhookURL}
}

// NotifyFeedback posts one feedback message to the channel
func (n *Notifier) NotifyFeedback(ctx context.Context, fb *model.Feedback) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf(":mailbox: New feedback from %s\n> %s", fb.Email, fb.Feedback),
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post feedback to Slack", goerr.T(types.TagUpstream))
	}
	return nil
}

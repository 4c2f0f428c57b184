package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
	"github.com/hemanth0525/contribuzz/pkg/utils/async"
)

type feedbackUseCase struct {
	mailer   interfaces.MailSender
	notifier interfaces.Notifier
}

// NewFeedback creates a FeedbackUseCase. notifier may be nil when no chat
// mirror is configured.
func NewFeedback(mailer interfaces.MailSender, notifier interfaces.Notifier) interfaces.FeedbackUseCase {
	return &feedbackUseCase{mailer: mailer, notifier: notifier}
}

// Send relays the feedback by email, then mirrors it to the chat channel
// in the background. Mail delivery is the outcome the caller sees; the
// mirror never fails the request.
func (uc *feedbackUseCase) Send(ctx context.Context, fb *model.Feedback) error {
	if fb.Email == "" || fb.Feedback == "" {
		return goerr.New("email and feedback are required", goerr.T(types.TagInvalidInput))
	}

	if uc.mailer == nil {
		return goerr.New("mail relay is not configured")
	}

	if err := uc.mailer.SendFeedback(ctx, fb); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("Feedback sent", "from", fb.Email)

	if uc.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.NotifyFeedback(ctx, fb)
		})
	}

	return nil
}

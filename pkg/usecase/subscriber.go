package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/interfaces"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

type subscriberUseCase struct {
	store interfaces.SubscriberStore
}

// NewSubscriber creates a SubscriberUseCase on the given store
func NewSubscriber(store interfaces.SubscriberStore) interfaces.SubscriberUseCase {
	return &subscriberUseCase{store: store}
}

// Add appends the email to the list unless it is already present. The
// read-modify-write is not transactional: two concurrent submissions can
// race and the last write wins, matching the original behavior.
func (uc *subscriberUseCase) Add(ctx context.Context, email string) error {
	logger := ctxlog.From(ctx)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return goerr.New("invalid email address", goerr.T(types.TagInvalidInput))
	}

	if uc.store == nil {
		return goerr.New("subscriber store is not configured")
	}

	list, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}

	if list.Contains(email) {
		return goerr.New("email already exists in the notification list",
			goerr.T(types.TagDuplicate))
	}

	list.Append(email)
	if err := uc.store.Save(ctx, list); err != nil {
		return err
	}

	logger.Info("Subscriber added", "total", len(list.EmailList))
	return nil
}

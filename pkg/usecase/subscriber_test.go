package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
	"github.com/hemanth0525/contribuzz/pkg/usecase"
)

// MockSubscriberStore is an in-memory mock implementation of SubscriberStore
type MockSubscriberStore struct {
	list    model.SubscriberList
	loadErr error
	saveErr error
	saves   int
}

func (m *MockSubscriberStore) Load(ctx context.Context) (*model.SubscriberList, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	copied := model.SubscriberList{EmailList: append([]string(nil), m.list.EmailList...)}
	return &copied, nil
}

func (m *MockSubscriberStore) Save(ctx context.Context, list *model.SubscriberList) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.list = *list
	m.saves++
	return nil
}

func TestSubscriberAdd(t *testing.T) {
	ctx := context.Background()
	store := &MockSubscriberStore{}
	uc := usecase.NewSubscriber(store)

	gt.NoError(t, uc.Add(ctx, "a@example.com"))
	gt.Array(t, store.list.EmailList).Equal([]string{"a@example.com"})

	// second submission of the same address is rejected, list untouched
	err := uc.Add(ctx, "a@example.com")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.TagDuplicate))
	gt.Array(t, store.list.EmailList).Equal([]string{"a@example.com"})
	gt.Number(t, store.saves).Equal(1)

	gt.NoError(t, uc.Add(ctx, "b@example.com"))
	gt.Array(t, store.list.EmailList).Equal([]string{"a@example.com", "b@example.com"})
}

func TestSubscriberAdd_Validation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSubscriber(&MockSubscriberStore{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		err := uc.Add(ctx, email)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.TagInvalidInput))
	}

	// surrounding whitespace is trimmed before storing
	store := &MockSubscriberStore{}
	uc = usecase.NewSubscriber(store)
	gt.NoError(t, uc.Add(ctx, "  c@example.com  "))
	gt.Array(t, store.list.EmailList).Equal([]string{"c@example.com"})
}

func TestSubscriberAdd_StoreFailure(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewSubscriber(&MockSubscriberStore{loadErr: errors.New("unavailable")})
	gt.Error(t, uc.Add(ctx, "a@example.com"))

	uc = usecase.NewSubscriber(&MockSubscriberStore{saveErr: errors.New("unavailable")})
	gt.Error(t, uc.Add(ctx, "a@example.com"))
}

package usecase

import (
	"context"

	"cinesocial/pkg/queue"
	"cinesocial/services/social/internal/repo/persistent"
	"cinesocial/services/social/internal/store"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ queue.Publisher = (*MockPublisher)(nil)

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap *store.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Load(ctx context.Context) (*store.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Snapshot), args.Error(1)
}

var _ persistent.SnapshotRepository = (*MockSnapshotRepository)(nil)

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e queue.Event) bool { return e.Type == eventType })
}

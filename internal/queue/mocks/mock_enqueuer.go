package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filesmanager/internal/queue"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(ctx context.Context, job queue.ThumbnailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(job queue.ThumbnailJob) bool {
	args := m.Called(job)
	return args.Bool(0)
}

type MockConsumer struct {
	mock.Mock
}

func (m *MockConsumer) Claim(ctx context.Context) (*queue.ClaimedJob, error) {
	args := m.Called(ctx)
	var j *queue.ClaimedJob
	if v := args.Get(0); v != nil {
		j = v.(*queue.ClaimedJob)
	}
	return j, args.Error(1)
}

func (m *MockConsumer) Complete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConsumer) Fail(ctx context.Context, id int64, cause error, maxAttempts int) error {
	args := m.Called(ctx, id, cause, maxAttempts)
	return args.Error(0)
}

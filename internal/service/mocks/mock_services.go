package mocks

import (
	"context"

	"filesmanager/internal/model"
	"filesmanager/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Create(ctx context.Context, token string, in service.CreateFileInput) (*model.File, error) {
	args := m.Called(ctx, token, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) CreateJSON(ctx context.Context, token string, body []byte) (*model.File, error) {
	args := m.Called(ctx, token, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, token, id string) (*model.File, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, token, parentID string, page int) ([]model.File, error) {
	args := m.Called(ctx, token, parentID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileService) Publish(ctx context.Context, token, id string) (*model.File, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) Unpublish(ctx context.Context, token, id string) (*model.File, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) Content(ctx context.Context, token, id, size string) (*service.FileContent, error) {
	args := m.Called(ctx, token, id, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileContent), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Connect(ctx context.Context, authorization string) (string, error) {
	args := m.Called(ctx, authorization)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Disconnect(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Status(ctx context.Context) service.Status {
	args := m.Called(ctx)
	return args.Get(0).(service.Status)
}

func (m *MockStatsService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

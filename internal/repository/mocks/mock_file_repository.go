package mocks

import (
	"context"

	"filesmanager/internal/model"
	"filesmanager/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, f *model.File) (*model.File, error) {
	args := m.Called(ctx, f)
	if fn, ok := args.Get(0).(func(context.Context, *model.File) *model.File); ok {
		return fn(ctx, f), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*model.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) FindByIDForOwner(ctx context.Context, id, userID string) (*model.File, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) ListByParent(ctx context.Context, userID string, parent model.ParentRef, pq repository.PageQuery) ([]model.File, error) {
	args := m.Called(ctx, userID, parent, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) SetPublic(ctx context.Context, id, userID string, public bool) (*model.File, error) {
	args := m.Called(ctx, id, userID, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

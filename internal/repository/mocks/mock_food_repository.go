package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nutriscan/internal/model"
)

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByName(ctx context.Context, name string) (*model.NutritionRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NutritionRecord), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nutriscan/internal/model"
)

type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) Lookup(ctx context.Context, label string) (*model.NutritionRecord, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NutritionRecord), args.Error(1)
}

func (m *MockNutritionService) LookupBarcode(ctx context.Context, code string) (*model.NutritionRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NutritionRecord), args.Error(1)
}

func (m *MockNutritionService) FallbackKeys() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

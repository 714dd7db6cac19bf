package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"nutriscan/internal/model"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, r io.Reader, filename string, size int64) (*model.UploadResult, error) {
	args := m.Called(ctx, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadResult), args.Error(1)
}

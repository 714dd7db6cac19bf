package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nutriscan/internal/config"
	"nutriscan/internal/foodsource"
	"nutriscan/internal/jsonlog"
	"nutriscan/internal/model"
	"nutriscan/internal/service/mocks"
	"nutriscan/internal/storage"
	storagemocks "nutriscan/internal/storage/mocks"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestUpload(store storage.Storage, nutrition NutritionService) *uploadService {
	svc := NewUploadService(store, nutrition, config.Load().Upload, jsonlog.Nop()).(*uploadService)
	svc.newID = func() string { return "id" }
	return svc
}

func TestUploadService_Validation(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		reader   io.Reader
		wantErr  error
	}{
		{"empty name", "", bytes.NewReader(pngBytes), ErrFilenameRequired},
		{"text file", "notes.txt", bytes.NewReader(pngBytes), ErrInvalidFileType},
		{"no extension", "apple", bytes.NewReader(pngBytes), ErrInvalidFileType},
		{"trailing dot", "apple.", bytes.NewReader(pngBytes), ErrInvalidFileType},
		{"double extension ends badly", "apple.jpg.exe", bytes.NewReader(pngBytes), ErrInvalidFileType},
		{"nil reader", "apple.png", nil, ErrReaderNil},
		{"empty name wins over nil reader", "", nil, ErrFilenameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storagemocks.MockStorage)
			mNutrition := new(mocks.MockNutritionService)
			svc := newTestUpload(mStore, mNutrition)

			res, err := svc.Upload(context.Background(), tt.reader, tt.filename, int64(len(pngBytes)))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
			mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mNutrition.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
		})
	}
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	apple := &model.NutritionRecord{Name: "Apple", Calories: model.Amount(52)}

	t.Run("stores, looks up and echoes the image", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_apple_1.jpg", mock.Anything, mock.MatchedBy(func(o storage.PutObjectOptions) bool {
			return o.ContentType == "image/jpeg" && o.Size == int64(len(pngBytes)) &&
				o.Metadata["original-filename"] == "apple_1.jpg" && o.Metadata["label"] == "apple"
		})).Return(storage.ObjectInfo{Key: "id_apple_1.jpg"}, nil)
		mStore.On("Get", ctx, "id_apple_1.jpg").Return(io.NopCloser(bytes.NewReader(pngBytes)), storage.ObjectInfo{}, nil)
		mNutrition.On("Lookup", ctx, "apple").Return(apple, nil)

		res, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple_1.jpg", int64(len(pngBytes)))
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "apple", res.Label)
		assert.Equal(t, apple, res.Nutrition)
		assert.Equal(t, "image/png", res.ContentType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(pngBytes), res.Image)
		mStore.AssertExpectations(t)
		mNutrition.AssertExpectations(t)
	})

	t.Run("unknown label yields nil nutrition", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_dragonfruit.gif", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		mStore.On("Get", ctx, "id_dragonfruit.gif").Return(io.NopCloser(bytes.NewReader(pngBytes)), storage.ObjectInfo{}, nil)
		mNutrition.On("Lookup", ctx, "dragonfruit").Return(nil, ErrNotFound)

		res, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "dragonfruit.gif", 0)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Nil(t, res.Nutrition)
		assert.Empty(t, res.NutritionSource)
	})

	t.Run("uppercase extension is accepted and case is kept", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_Banana.PNG", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		mStore.On("Get", ctx, "id_Banana.PNG").Return(io.NopCloser(bytes.NewReader(pngBytes)), storage.ObjectInfo{}, nil)
		mNutrition.On("Lookup", ctx, "Banana").Return(nil, ErrNotFound)

		res, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "Banana.PNG", 0)
		require.NoError(t, err)
		assert.Equal(t, "Banana", res.Label)
	})

	t.Run("storage failure", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_apple.png", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("disk full"))

		res, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple.png", 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Nil(t, res)
		mNutrition.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})

	t.Run("read back failure", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_apple.png", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		mStore.On("Get", ctx, "id_apple.png").Return(nil, storage.ObjectInfo{}, errors.New("gone"))
		mNutrition.On("Lookup", ctx, "apple").Return(apple, nil)

		res, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple.png", 0)
		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("unexpected lookup error", func(t *testing.T) {
		mStore := new(storagemocks.MockStorage)
		mNutrition := new(mocks.MockNutritionService)
		svc := newTestUpload(mStore, mNutrition)

		mStore.On("Put", ctx, "id_apple.png", mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		mNutrition.On("Lookup", ctx, "apple").Return(nil, context.Canceled)

		_, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple.png", 0)
		assert.ErrorIs(t, err, context.Canceled)
		mStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestUploadService_LocalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocal(dir)
	require.NoError(t, err)

	nutrition, err := NewNutritionService(NutritionOptions{Static: foodsource.NewStatic()})
	require.NoError(t, err)

	svc := NewUploadService(store, nutrition, config.Load().Upload, nil)
	ctx := context.Background()

	first, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple_1.jpg", int64(len(pngBytes)))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, bytes.NewReader(pngBytes), "apple_1.jpg", int64(len(pngBytes)))
	require.NoError(t, err)

	assert.Equal(t, "apple", first.Label)
	require.NotNil(t, first.Nutrition)
	assert.Equal(t, "Apple", first.Nutrition.Name)
	assert.Equal(t, "static", first.NutritionSource)

	decoded, err := base64.StdEncoding.DecodeString(first.Image)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
	assert.Equal(t, first.Image, second.Image)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Name(), entries[1].Name())
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), "_apple_1.jpg"), e.Name())
	}
}

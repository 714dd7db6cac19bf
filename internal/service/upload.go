package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"nutriscan/internal/config"
	"nutriscan/internal/jsonlog"
	"nutriscan/internal/model"
	"nutriscan/internal/storage"
)

// UploadService handles image uploads: validate, store, derive the label, look it up, and echo the image back.
type UploadService interface {
	// Upload validates the file name, stores the content under a collision-free key and returns
	// the stored bytes base64-encoded together with the derived label and its nutrition facts.
	// A missing nutrition record is not an error: UploadResult.Nutrition is nil.
	Upload(ctx context.Context, r io.Reader, filename string, size int64) (*model.UploadResult, error)
}

type uploadService struct {
	store     storage.Storage
	nutrition NutritionService
	cfg       config.UploadConfig
	log       *jsonlog.Logger
	newID     func() string
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Storage, nutrition NutritionService, cfg config.UploadConfig, log *jsonlog.Logger) UploadService {
	if log == nil {
		log = jsonlog.Nop()
	}
	return &uploadService{
		store:     store,
		nutrition: nutrition,
		cfg:       cfg,
		log:       log,
		newID:     uuid.NewString,
	}
}

// validate applies the upload rules in order: non-empty name, then an allowed extension.
func (s *uploadService) validate(filename string) error {
	if filename == "" {
		return ErrFilenameRequired
	}
	if !s.cfg.Allows(fileExtension(filename)) {
		return ErrInvalidFileType
	}
	return nil
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, filename string, size int64) (*model.UploadResult, error) {
	if err := s.validate(filename); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	safe := SanitizeFilename(filename)
	if safe == "" {
		return nil, ErrInvalidFilename
	}
	// The generated prefix keeps two uploads with the same name from overwriting each other.
	key := s.newID() + "_" + safe
	label := DeriveLabel(safe)

	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: mime.TypeByExtension(filepath.Ext(safe)),
		Metadata: map[string]string{
			"original-filename": filename,
			"label":             label,
		},
	}); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	s.log.Info("upload_stored", jsonlog.Fields{
		"key":   key,
		"label": label,
		"size":  size,
	})

	rec, err := s.nutrition.Lookup(ctx, label)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("nutrition lookup: %w", err)
	}

	data, err := s.readBack(ctx, key)
	if err != nil {
		return nil, err
	}

	res := &model.UploadResult{
		Success:     true,
		Image:       base64.StdEncoding.EncodeToString(data),
		ContentType: http.DetectContentType(data),
		Label:       label,
		Nutrition:   rec,
	}
	if rec != nil {
		res.NutritionSource = rec.Source
	}
	return res, nil
}

func (s *uploadService) readBack(ctx context.Context, key string) ([]byte, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read stored upload: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read stored upload: %w", err)
	}
	return data, nil
}

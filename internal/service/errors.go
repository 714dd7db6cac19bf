package service

import "errors"

var (
	ErrNotFound         = errors.New("nutrition information not found")
	ErrInvalidBarcode   = errors.New("invalid barcode")
	ErrReaderNil        = errors.New("reader is nil")
	ErrFilenameRequired = errors.New("no file selected")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrInvalidFilename  = errors.New("invalid file name")
)

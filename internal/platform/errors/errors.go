package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrInterrupted   = errors.New("interrupted")
)

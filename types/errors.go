package types

import (
	"errors"
	"fmt"
)

// ErrInvalidInput rejects empty or whitespace-only review text before any
// model is invoked.
var ErrInvalidInput = errors.New("review text is empty")

// ErrMissingReview rejects an uploaded table with no "review" column before
// any row is processed.
var ErrMissingReview = errors.New(`table is missing required "review" column`)

// ClassificationError marks a model invocation failure for one schema. It
// is recorded on the affected verdict and never aborts a batch.
type ClassificationError struct {
	Schema Schema
	Model  string
	Err    error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s classification failed (%s): %v", e.Schema, e.Model, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

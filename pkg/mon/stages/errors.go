package stages

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrStageMismatch = errors.New("stages: stage type mismatch")
	ErrEmptyPipeline = errors.New("stages: pipeline has no stages")
)

// StageError reports a stage whose input type does not match what it
// receives.
type StageError struct {
	Index int
	Stage string
	Want  reflect.Type
	Got   reflect.Type
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: stage %d (%q) expects %v, got %v", ErrStageMismatch, e.Index, e.Stage, e.Want, e.Got)
}

func (e *StageError) Unwrap() error {
	return ErrStageMismatch
}

package meals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMealNotFound     = errors.New("meal not found")
	ErrGenerationFailed = errors.New("meal plan generation failed")
)

// PlanError reports a plan batch that stopped mid-way. Saved holds the
// zero-based day indices whose records were persisted before the failure;
// the remaining days were not written. Callers must not assume all-or-
// nothing semantics across the batch.
type PlanError struct {
	Saved []int
	Err   error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("meal plan partially saved (%d of batch): %v", len(e.Saved), e.Err)
}

func (e *PlanError) Unwrap() error { return e.Err }

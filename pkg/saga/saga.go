package saga

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Compensation undoes one completed step.
type Compensation struct {
	Name string
	Undo func(ctx context.Context) error
}

// Saga collects compensations for the steps that have completed so far.
// It is not safe for concurrent use; one saga belongs to one request.
type Saga struct {
	name  string
	steps []Compensation
}

func New(name string) *Saga {
	return &Saga{name: name}
}

// Record registers undo for a step that just succeeded.
func (s *Saga) Record(name string, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, Compensation{Name: name, Undo: undo})
}

// CompensationError reports the undo steps that failed while rolling back.
type CompensationError struct {
	Saga string
	Errs *multierror.Error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("saga %s compensation failed: %v", e.Saga, e.Errs.ErrorOrNil())
}

func (e *CompensationError) Unwrap() error { return e.Errs.ErrorOrNil() }

// Compensate runs every recorded undo in reverse order, even when some fail.
// It returns nil or a *CompensationError.
func (s *Saga) Compensate(ctx context.Context) error {
	var result *multierror.Error
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.Undo(ctx); err != nil {
			hlog.CtxErrorf(ctx, "saga %s: compensation %s failed: %v", s.name, step.Name, err)
			result = multierror.Append(result, errors.WithMessage(err, step.Name))
		}
	}
	s.steps = nil
	if result == nil {
		return nil
	}
	return &CompensationError{Saga: s.name, Errs: result}
}

// Fail compensates and returns cause, joined with the compensation error if any.
func (s *Saga) Fail(ctx context.Context, cause error) error {
	cerr := s.Compensate(ctx)
	if cerr == nil {
		return cause
	}
	return &Failure{Cause: cause, Compensation: cerr.(*CompensationError)}
}

// Failure is a step failure whose rollback did not complete cleanly.
// errors.As finds both the cause (e.g. an errno.ErrNo) and the CompensationError.
type Failure struct {
	Cause        error
	Compensation *CompensationError
}

func (f *Failure) Error() string {
	return f.Cause.Error() + "; " + f.Compensation.Error()
}

func (f *Failure) Unwrap() []error {
	return []error{f.Cause, f.Compensation}
}

package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of applying a function to one file.
type Outcome[T any] struct {
	Path  string
	Value T
	Err   error

	// Done is false when the file was never started because the run was
	// cancelled.
	Done bool
}

// Process applies fn to every path using at most jobs concurrent workers.
// Outcomes are returned in the order of paths. Errors from fn are kept per
// file and do not stop the run; only cancellation of ctx does.
func Process[T any](
	ctx context.Context,
	paths []string,
	jobs int,
	fn func(ctx context.Context, path string) (T, error),
) ([]Outcome[T], error) {
	outcomes := make([]Outcome[T], len(paths))
	if len(paths) == 0 {
		return outcomes, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(paths))

	var group errgroup.Group
	group.SetLimit(jobs)

	for i, path := range paths {
		outcomes[i].Path = path
		if ctx.Err() != nil {
			continue
		}
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			value, err := fn(ctx, path)
			outcomes[i] = Outcome[T]{Path: path, Value: value, Err: err, Done: true}
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return outcomes, fmt.Errorf("run cancelled: %w", err)
	}
	return outcomes, nil
}

package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yaklabco/gocst/internal/logging"
	"github.com/yaklabco/gocst/pkg/config"
	"github.com/yaklabco/gocst/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Engine.
type Runner struct {
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Extensions returns every extension registered with the engine's languages.
func (r *Runner) Extensions() []string {
	var exts []string
	for _, name := range r.Engine.Languages.Names() {
		exts = append(exts, r.Engine.Languages.Extensions(name)...)
	}
	return exts
}

// Run discovers files under opts.Paths and lints them concurrently.
// Outcomes are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	if len(opts.Extensions) == 0 {
		opts.Extensions = r.Extensions()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	outcomes, runErr := Process(ctx, files, opts.Jobs, func(ctx context.Context, path string) (FileOutcome, error) {
		return r.lintPath(ctx, path, cfg), nil
	})
	for _, o := range outcomes {
		if o.Done {
			result.accumulate(o.Value)
		}
	}
	result.Stats.Duration = time.Since(start)

	return result, runErr
}

func (r *Runner) lintPath(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	ctx = logging.ForFile(ctx, path)
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	outcome.Bytes = len(content)

	start := time.Now()
	fileResult, err := r.Engine.LintFile(ctx, path, content, cfg)
	outcome.Duration = time.Since(start)
	if err != nil {
		outcome.Error = fmt.Errorf("lint %s: %w", path, err)
		return outcome
	}
	outcome.Result = fileResult

	logging.FromContext(ctx).Debug("linted file",
		logging.FieldLanguage, fileResult.File.Language,
		logging.FieldBytes, outcome.Bytes,
		logging.FieldDuration, outcome.Duration,
		logging.FieldDiagnostics, len(fileResult.Diagnostics),
	)
	return outcome
}

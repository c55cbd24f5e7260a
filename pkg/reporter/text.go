package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/gocst/internal/ui/pretty"
	"github.com/yaklabco/gocst/pkg/lint"
	"github.com/yaklabco/gocst/pkg/runner"
)

// tabWidth is the number of spaces a tab occupies in source context lines.
const tabWidth = 4

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, file.Result.File.Language, len(file.Result.Diagnostics)))
		}

		for i := range file.Result.Diagnostics {
			diag := file.Result.Diagnostics[i]
			diag.FilePath = path

			var source *pretty.SourceContext
			if r.opts.ShowContext {
				source = sourceContext(file.Result.File, &diag)
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, source, r.opts.RuleFormat))
			total++
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// sourceContext returns the first line of the diagnostic with display
// columns measured in grapheme cluster widths. Tabs are expanded so the
// caret stays aligned.
func sourceContext(file *lint.SourceFile, diag *lint.Diagnostic) *pretty.SourceContext {
	if file == nil || file.Lines == nil || diag.StartLine < 1 {
		return nil
	}

	text := file.Lines.LineText(diag.StartLine)
	start := clamp(diag.StartColumn-1, len(text))
	end := start
	if diag.EndLine == diag.StartLine {
		end = clamp(diag.EndColumn-1, len(text))
	} else if diag.EndLine > diag.StartLine {
		end = len(text)
	}
	end = max(end, start)

	return &pretty.SourceContext{
		Line:   expandTabs(text),
		Column: uniseg.StringWidth(expandTabs(text[:start])) + 1,
		Width:  uniseg.StringWidth(expandTabs(text[start:end])),
	}
}

func clamp(n, upper int) int {
	return max(0, min(n, upper))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauern/labelsync/internal/reconcile"
)

// Actions emits GitHub Actions workflow commands: notices, warnings, and
// errors become annotations, and the final summary is appended to the step
// summary file when GITHUB_STEP_SUMMARY is set.
type Actions struct {
	out         io.Writer
	summaryPath string
}

// NewActions creates an Actions reporter writing workflow commands to out
// (stdout when nil). The step summary location is read from the environment
// the way the runner provides it.
func NewActions(out io.Writer) *Actions {
	if out == nil {
		out = os.Stdout
	}
	return &Actions{
		out:         out,
		summaryPath: os.Getenv("GITHUB_STEP_SUMMARY"),
	}
}

// RunningInActions reports whether the process is running inside a GitHub
// Actions job.
func RunningInActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

func (a *Actions) Info(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *Actions) Success(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *Actions) Skip(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *Actions) Warn(msg string) {
	fmt.Fprintf(a.out, "::warning::%s\n", escapeAnnotation(msg))
}

func (a *Actions) Error(msg string) {
	fmt.Fprintf(a.out, "::error::%s\n", escapeAnnotation(msg))
}

// WriteSummary appends a markdown summary to the step summary file, falling
// back to plain output when the runner did not provide one.
func (a *Actions) WriteSummary(result *reconcile.Result) error {
	md := summaryMarkdown(result)
	if a.summaryPath == "" {
		_, err := fmt.Fprint(a.out, result.Text())
		return err
	}
	// #nosec G302 G304 - path comes from the Actions runner environment
	f, err := os.OpenFile(a.summaryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening step summary: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(md); err != nil {
		return fmt.Errorf("writing step summary: %w", err)
	}
	return nil
}

func summaryMarkdown(result *reconcile.Result) string {
	var sb strings.Builder
	sb.WriteString("## Label reconciliation\n\n")
	if result.DryRun {
		sb.WriteString("_Dry run - no changes made._\n\n")
	}
	s := result.Summary
	sb.WriteString("| Created | Updated | Renamed | Deleted | Skipped | Failed |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	sb.WriteString(fmt.Sprintf("| %d | %d | %d | %d | %d | %d |\n",
		s.Created, s.Updated, s.Renamed, s.Deleted, s.Skipped, s.Failed))

	if failed := result.Failed(); len(failed) > 0 {
		sb.WriteString("\n### Failures\n\n")
		for _, op := range failed {
			sb.WriteString(fmt.Sprintf("- `%s %s`: %s\n", op.Type, op.Label, op.Error))
		}
	}
	return sb.String()
}

// escapeAnnotation escapes the characters workflow commands treat specially.
func escapeAnnotation(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}

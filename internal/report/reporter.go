// Package report provides the observability sinks the reconciliation engine
// pushes progress into: a colored console reporter and a GitHub Actions
// reporter that emits workflow annotations and a step summary. Reporters are
// push-only; engine decisions never depend on them.
package report

import (
	"github.com/klauern/labelsync/internal/reconcile"
)

// Reporter extends the engine's progress sink with final summary rendering,
// which the caller invokes once the run completes.
type Reporter interface {
	reconcile.Reporter
	WriteSummary(result *reconcile.Result) error
}

// Noop discards everything. Useful for tests and embedding.
type Noop struct{}

func (Noop) Info(string)    {}
func (Noop) Success(string) {}
func (Noop) Skip(string)    {}
func (Noop) Warn(string)    {}
func (Noop) Error(string)   {}

func (Noop) WriteSummary(*reconcile.Result) error { return nil }

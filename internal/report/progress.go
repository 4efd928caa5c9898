package report

import (
	"github.com/klauern/labelsync/internal/progress"
	"github.com/klauern/labelsync/internal/reconcile"
)

// Progress decorates a Reporter, advancing a progress bar as the engine
// reports each operation.
type Progress struct {
	inner Reporter
	bar   *progress.Bar
}

// WithProgress wraps reporter so every reported operation advances bar.
func WithProgress(reporter Reporter, bar *progress.Bar) *Progress {
	return &Progress{inner: reporter, bar: bar}
}

func (p *Progress) Info(msg string) {
	p.inner.Info(msg)
}

func (p *Progress) Success(msg string) {
	p.inner.Success(msg)
	_ = p.bar.Add(1)
}

func (p *Progress) Skip(msg string) {
	p.inner.Skip(msg)
	_ = p.bar.Add(1)
}

func (p *Progress) Warn(msg string) {
	p.inner.Warn(msg)
}

func (p *Progress) Error(msg string) {
	p.inner.Error(msg)
	_ = p.bar.Add(1)
}

// WriteSummary finishes the bar before delegating to the inner reporter.
func (p *Progress) WriteSummary(result *reconcile.Result) error {
	_ = p.bar.Finish()
	return p.inner.WriteSummary(result)
}

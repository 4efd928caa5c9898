package report

import (
	"fmt"
	"io"
	"os"

	"github.com/klauern/labelsync/internal/reconcile"
	"github.com/klauern/labelsync/internal/ui"
)

// Console writes human-readable progress to a terminal.
type Console struct {
	out io.Writer
}

// NewConsole creates a console reporter writing to out. A nil out defaults
// to stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, ui.Info(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, ui.StatusSuccess(msg))
}

func (c *Console) Skip(msg string) {
	fmt.Fprintln(c.out, ui.StatusSkipped(msg))
}

func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, ui.StatusWarning(msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, ui.StatusError(msg))
}

// WriteSummary prints the final counters and failure details.
func (c *Console) WriteSummary(result *reconcile.Result) error {
	fmt.Fprintln(c.out)
	if result.Success() {
		fmt.Fprintln(c.out, ui.Bold("Labels reconciled"))
	} else {
		fmt.Fprintln(c.out, ui.Error("Reconciliation finished with failures"))
	}
	_, err := fmt.Fprint(c.out, result.Text())
	return err
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klauern/labelsync/internal/reconcile"
)

func sampleOps() []reconcile.Operation {
	return []reconcile.Operation{
		{Type: reconcile.OpCreate, Label: "bug", Details: &reconcile.Details{Color: "d73a4a"}},
		{Type: reconcile.OpRename, Label: "feature", From: "enhancement"},
		{Type: reconcile.OpDelete, Label: "stale"},
	}
}

func TestNewPlanModel(t *testing.T) {
	m := NewPlanModel(sampleOps())

	if len(m.ops) != 3 {
		t.Errorf("expected 3 operations, got %d", len(m.ops))
	}
	if m.Action() != PlanActionNone {
		t.Error("initial action should be PlanActionNone")
	}
}

func TestPlanModel_View(t *testing.T) {
	m := NewPlanModel(sampleOps())

	view := m.View()
	if !strings.Contains(view, "Planned operations (3)") {
		t.Errorf("expected title in view, got:\n%s", view)
	}
	// Operation types are title-cased for display.
	if !strings.Contains(view, "Create") {
		t.Errorf("expected title-cased action in view, got:\n%s", view)
	}
	if !strings.Contains(view, "enhancement") {
		t.Errorf("expected rename source in view, got:\n%s", view)
	}
}

func TestPlanModel_Confirm(t *testing.T) {
	m := NewPlanModel(sampleOps())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	pm, ok := updated.(PlanModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	if pm.Action() != PlanActionApply {
		t.Error("pressing y should confirm the plan")
	}
	if cmd == nil {
		t.Error("confirm should quit the program")
	}
}

func TestPlanModel_Quit(t *testing.T) {
	m := NewPlanModel(sampleOps())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	pm := updated.(PlanModel)
	if pm.Action() != PlanActionNone {
		t.Error("pressing q should not confirm the plan")
	}
	if cmd == nil {
		t.Error("quit should exit the program")
	}
	if pm.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestPlanDetail(t *testing.T) {
	tests := []struct {
		name string
		op   reconcile.Operation
		want string
	}{
		{"no details", reconcile.Operation{Type: reconcile.OpDelete}, ""},
		{
			"color change",
			reconcile.Operation{Details: &reconcile.Details{Color: "d73a4a", OldColor: "ededed"}},
			"color ededed -> d73a4a",
		},
		{
			"new color",
			reconcile.Operation{Details: &reconcile.Details{Color: "d73a4a"}},
			"color d73a4a",
		},
		{
			"description change",
			reconcile.Operation{Details: &reconcile.Details{Description: "new", OldDescription: "old"}},
			"description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := planDetail(tt.op); got != tt.want {
				t.Errorf("planDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncatePlanValue(t *testing.T) {
	if got := truncatePlanValue("short", 10); got != "short" {
		t.Errorf("short values should pass through, got %q", got)
	}
	if got := truncatePlanValue("a-very-long-label-name", 10); got != "a-very-..." {
		t.Errorf("long values should be truncated with ellipsis, got %q", got)
	}
}

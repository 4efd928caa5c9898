package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/labelsync/internal/reconcile"
)

// PlanAction represents the decision made after reviewing a plan.
type PlanAction int

const (
	// PlanActionNone means the user quit without applying.
	PlanActionNone PlanAction = iota
	// PlanActionApply means the user confirmed the plan.
	PlanActionApply
)

// planKeyMap defines the key bindings for the plan review list.
type planKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultPlanKeyMap() planKeyMap {
	return planKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "apply plan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit without applying"),
		),
	}
}

// Styles for the plan list TUI.
var planStyles = struct {
	Title  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
}

const (
	planActionWidth = 8
	planLabelWidth  = 24
	planFromWidth   = 18
	planDetailWidth = 40
)

// PlanModel is the BubbleTea model for reviewing a dry-run plan before
// applying it.
type PlanModel struct {
	table    table.Model
	ops      []reconcile.Operation
	keys     planKeyMap
	action   PlanAction
	quitting bool
	width    int
}

// NewPlanModel creates a plan review model over the given operations.
func NewPlanModel(ops []reconcile.Operation) PlanModel {
	titleCaser := cases.Title(language.English)

	rows := make([]table.Row, len(ops))
	for i, op := range ops {
		rows[i] = table.Row{
			titleCaser.String(string(op.Type)),
			truncatePlanValue(op.Label, planLabelWidth),
			truncatePlanValue(op.From, planFromWidth),
			truncatePlanValue(planDetail(op), planDetailWidth),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Action", Width: planActionWidth},
			{Title: "Label", Width: planLabelWidth},
			{Title: "From", Width: planFromWidth},
			{Title: "Change", Width: planDetailWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(ops)+1, 15)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return PlanModel{
		table: t,
		ops:   ops,
		keys:  defaultPlanKeyMap(),
	}
}

func planDetail(op reconcile.Operation) string {
	if op.Details == nil {
		return ""
	}
	d := op.Details
	var parts []string
	if d.OldColor != "" && d.OldColor != d.Color {
		parts = append(parts, fmt.Sprintf("color %s -> %s", d.OldColor, d.Color))
	} else if d.Color != "" && d.OldColor == "" {
		parts = append(parts, "color "+d.Color)
	}
	if d.OldDescription != d.Description {
		parts = append(parts, "description")
	}
	return strings.Join(parts, ", ")
}

func truncatePlanValue(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

// Init implements tea.Model.
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.action = PlanActionApply
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.action = PlanActionNone
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PlanModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(planStyles.Title.Render(fmt.Sprintf("Planned operations (%d)", len(m.ops))))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(planStyles.Help.Render("↑/k up • ↓/j down • y/enter apply • q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Action returns the decision made when the program exited.
func (m PlanModel) Action() PlanAction {
	return m.action
}

// ReviewPlan runs the interactive plan review and reports whether the user
// confirmed applying it.
func ReviewPlan(ops []reconcile.Operation) (bool, error) {
	final, err := Run(NewPlanModel(ops))
	if err != nil {
		return false, err
	}
	model, ok := final.(PlanModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Action() == PlanActionApply, nil
}

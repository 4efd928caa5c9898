package reconcile

import (
	"context"
	"fmt"

	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/logging"
	"github.com/klauern/labelsync/internal/store"
)

// DeletionPolicy selects how remote labels absent from the manifest are
// handled. The policy is an explicit per-run parameter, never inferred from
// which manifest fields happen to be populated.
type DeletionPolicy string

const (
	// PolicyNone performs no deletion sweep.
	PolicyNone DeletionPolicy = "none"

	// PolicyExplicit deletes exactly the names listed in the manifest's
	// delete list.
	PolicyExplicit DeletionPolicy = "explicit"

	// PolicyDeclarative deletes every remote label that is neither desired,
	// an alias of a desired label, nor matched by an ignore pattern.
	PolicyDeclarative DeletionPolicy = "declarative"
)

// IsValid returns true if the policy is recognized.
func (p DeletionPolicy) IsValid() bool {
	switch p {
	case PolicyNone, PolicyExplicit, PolicyDeclarative:
		return true
	default:
		return false
	}
}

// AllPolicies returns every supported deletion policy.
func AllPolicies() []DeletionPolicy {
	return []DeletionPolicy{PolicyNone, PolicyExplicit, PolicyDeclarative}
}

// Reporter receives progress messages from the engine. It is push-only:
// engine decisions never depend on reporter behavior, and a nil reporter is
// replaced with a no-op.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Skip(msg string)
	Warn(msg string)
	Error(msg string)
}

type noopReporter struct{}

func (noopReporter) Info(string)    {}
func (noopReporter) Success(string) {}
func (noopReporter) Skip(string)    {}
func (noopReporter) Warn(string)    {}
func (noopReporter) Error(string)   {}

// Options configures a reconciliation run.
type Options struct {
	// Policy selects the deletion sweep behavior. Defaults to PolicyNone.
	Policy DeletionPolicy

	// DryRun marks the result as a preview. The store is expected to
	// suppress its own mutations; the engine records intent either way.
	DryRun bool
}

// Engine reconciles a desired label manifest against a label store. A run is
// fully sequential: each decision observes the effect of earlier ones through
// an exclusively-owned working map, so renames free their alias name and
// creates count as existing within the same run.
type Engine struct {
	store    store.Store
	reporter Reporter
}

// New creates an Engine backed by the given store. A nil reporter disables
// progress output.
func New(s store.Store, r Reporter) *Engine {
	if r == nil {
		r = noopReporter{}
	}
	return &Engine{store: s, reporter: r}
}

// Reconcile diffs the manifest against the store's current labels and applies
// the resulting operations. Per-label store failures are recorded in the
// result and never abort the run; only a failure to list the current labels
// short-circuits, recorded as a single failed operation for "*".
func (e *Engine) Reconcile(ctx context.Context, m *label.Manifest, opts Options) *Result {
	defer logging.Timer("reconcile")()

	if m == nil {
		m = &label.Manifest{}
	}
	policy := opts.Policy
	if policy == "" {
		policy = PolicyNone
	}

	logging.Debug("starting reconciliation",
		logging.Operation("reconcile"),
		logging.Count(len(m.Labels)),
		logging.Policy(string(policy)),
	)

	result := &Result{DryRun: opts.DryRun}

	remote, err := e.store.List(ctx)
	if err != nil {
		msg := store.FormatError(err)
		logging.Error("failed to list remote labels", logging.Err(err))
		e.reporter.Error("failed to list labels: " + msg)
		result.record(Operation{Type: OpSkip, Label: "*", Success: false, Error: msg})
		return result
	}

	// Working map of best-known remote state, owned by this run. The order
	// slice preserves the listing order for a deterministic deletion sweep.
	existing := make(map[string]label.RemoteLabel, len(remote))
	order := make([]string, 0, len(remote))
	for _, rl := range remote {
		existing[rl.Name] = rl
		order = append(order, rl.Name)
	}

	for _, desired := range m.Labels {
		e.applyLabel(ctx, desired, existing, result)
	}

	switch policy {
	case PolicyExplicit:
		e.sweepExplicit(ctx, m.Delete, existing, result)
	case PolicyDeclarative:
		if len(m.Delete) > 0 {
			e.reporter.Warn("manifest delete list is deprecated under declarative deletion and was not applied")
		}
		e.sweepDeclarative(ctx, m, existing, order, result)
	}

	logging.Debug("reconciliation completed",
		logging.Operation("reconcile"),
		logging.Count(len(result.Operations)),
	)

	return result
}

// applyLabel converges a single desired label: rename from the first matching
// alias, create when absent, update when drifted, or skip.
func (e *Engine) applyLabel(ctx context.Context, desired label.Label, existing map[string]label.RemoteLabel, result *Result) {
	cleanColor := label.NormalizeColor(desired.Color)

	current, found := existing[desired.Name]
	if !found {
		// Alias scan is in declared order and the first remote match wins.
		// After a rename only one name can map to the desired label, so any
		// further matching aliases are left for a later run.
		for _, alias := range desired.Aliases {
			if _, ok := existing[alias]; ok {
				e.renameLabel(ctx, desired, alias, cleanColor, existing, result)
				return
			}
		}
		e.createLabel(ctx, desired, cleanColor, existing, result)
		return
	}

	colorDiff := !label.ColorsEqual(current.Color, cleanColor)
	descDiff := current.Description != desired.Description
	if !colorDiff && !descDiff {
		result.record(Operation{Type: OpSkip, Label: desired.Name, Success: true})
		e.reporter.Skip(fmt.Sprintf("%s is up to date", desired.Name))
		return
	}

	updated, err := e.store.Update(ctx, desired.Name, store.UpdateOptions{
		Color:       cleanColor,
		Description: desired.Description,
	})
	if err != nil {
		msg := store.FormatError(err)
		result.record(Operation{Type: OpUpdate, Label: desired.Name, Success: false, Error: msg})
		e.reporter.Error(fmt.Sprintf("failed to update %s: %s", desired.Name, msg))
		return
	}

	next := current
	if cleanColor != "" {
		next.Color = cleanColor
	}
	next.Description = desired.Description
	if updated != nil {
		next = *updated
	}
	existing[desired.Name] = next

	result.record(Operation{
		Type:    OpUpdate,
		Label:   desired.Name,
		Success: true,
		Details: &Details{
			Color:          next.Color,
			Description:    desired.Description,
			OldColor:       current.Color,
			OldDescription: current.Description,
		},
	})
	e.reporter.Success(fmt.Sprintf("updated %s", desired.Name))
}

// renameLabel renames alias to the desired name, carrying color and
// description in the same store call. A failed rename ends this label's pass:
// the alias still exists remotely, so creating the desired name now would
// duplicate it.
func (e *Engine) renameLabel(ctx context.Context, desired label.Label, alias, cleanColor string, existing map[string]label.RemoteLabel, result *Result) {
	old := existing[alias]

	updated, err := e.store.Update(ctx, alias, store.UpdateOptions{
		NewName:     desired.Name,
		Color:       cleanColor,
		Description: desired.Description,
	})
	if err != nil {
		msg := store.FormatError(err)
		result.record(Operation{Type: OpRename, Label: desired.Name, From: alias, Success: false, Error: msg})
		e.reporter.Error(fmt.Sprintf("failed to rename %s to %s: %s", alias, desired.Name, msg))
		return
	}

	delete(existing, alias)
	next := label.RemoteLabel{Name: desired.Name, Color: old.Color, Description: desired.Description}
	if cleanColor != "" {
		next.Color = cleanColor
	}
	if updated != nil {
		next = *updated
	}
	existing[desired.Name] = next

	result.record(Operation{
		Type:    OpRename,
		Label:   desired.Name,
		From:    alias,
		Success: true,
		Details: &Details{
			Color:          next.Color,
			Description:    desired.Description,
			OldColor:       old.Color,
			OldDescription: old.Description,
		},
	})
	e.reporter.Success(fmt.Sprintf("renamed %s to %s", alias, desired.Name))
}

// createLabel creates the desired label. Without a declared color the store
// assigns its default, and the working map tracks that value so later
// decisions in this run see what the store will report.
func (e *Engine) createLabel(ctx context.Context, desired label.Label, cleanColor string, existing map[string]label.RemoteLabel, result *Result) {
	created, err := e.store.Create(ctx, store.CreateOptions{
		Name:        desired.Name,
		Color:       cleanColor,
		Description: desired.Description,
	})
	if err != nil {
		msg := store.FormatError(err)
		result.record(Operation{Type: OpCreate, Label: desired.Name, Success: false, Error: msg})
		e.reporter.Error(fmt.Sprintf("failed to create %s: %s", desired.Name, msg))
		return
	}

	next := label.RemoteLabel{Name: desired.Name, Color: cleanColor, Description: desired.Description}
	if next.Color == "" {
		next.Color = label.DefaultColor
	}
	if created != nil {
		next = *created
	}
	existing[desired.Name] = next

	result.record(Operation{
		Type:    OpCreate,
		Label:   desired.Name,
		Success: true,
		Details: &Details{Color: next.Color, Description: desired.Description},
	})
	e.reporter.Success(fmt.Sprintf("created %s", desired.Name))
}

// sweepExplicit deletes exactly the listed names. An already-absent name is
// recorded as a skip, not a failure: the label may simply be gone.
func (e *Engine) sweepExplicit(ctx context.Context, deletes []string, existing map[string]label.RemoteLabel, result *Result) {
	for _, name := range deletes {
		if _, ok := existing[name]; !ok {
			result.record(Operation{Type: OpSkip, Label: name, Success: true})
			e.reporter.Skip(fmt.Sprintf("%s already absent", name))
			continue
		}
		e.deleteLabel(ctx, name, existing, result)
	}
}

// sweepDeclarative deletes every remaining remote label that is neither a
// desired name, an alias of a desired label, nor matched by an ignore
// pattern. Aliases are protected even mid-run: they are rename sources, not
// deletion targets.
func (e *Engine) sweepDeclarative(ctx context.Context, m *label.Manifest, existing map[string]label.RemoteLabel, order []string, result *Result) {
	protected := make(map[string]bool, len(m.Labels))
	for _, d := range m.Labels {
		protected[d.Name] = true
		for _, alias := range d.Aliases {
			protected[alias] = true
		}
	}

	patterns := make([]label.Pattern, 0, len(m.Ignore))
	for _, glob := range m.Ignore {
		p, err := label.CompilePattern(glob)
		if err != nil {
			// Manifest validation rejects these upstream; tolerate here
			// rather than letting a bad pattern widen the sweep.
			e.reporter.Warn(fmt.Sprintf("ignoring invalid pattern %q: %v", glob, err))
			continue
		}
		patterns = append(patterns, p)
	}

	for _, name := range order {
		if _, ok := existing[name]; !ok {
			continue // renamed away earlier in this run
		}
		if protected[name] {
			continue
		}
		if matchAny(patterns, name) {
			logging.Debug("ignoring remote label", logging.Label(name))
			continue
		}
		e.deleteLabel(ctx, name, existing, result)
	}
}

func (e *Engine) deleteLabel(ctx context.Context, name string, existing map[string]label.RemoteLabel, result *Result) {
	if err := e.store.Delete(ctx, name); err != nil {
		msg := store.FormatError(err)
		result.record(Operation{Type: OpDelete, Label: name, Success: false, Error: msg})
		e.reporter.Error(fmt.Sprintf("failed to delete %s: %s", name, msg))
		return
	}
	delete(existing, name)
	result.record(Operation{Type: OpDelete, Label: name, Success: true})
	e.reporter.Success(fmt.Sprintf("deleted %s", name))
}

func matchAny(patterns []label.Pattern, name string) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

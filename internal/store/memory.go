package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/klauern/labelsync/internal/label"
)

// Memory is an in-memory Store. It backs engine tests and the plan preview
// pass, preserves insertion order for List, and supports per-name failure
// injection.
type Memory struct {
	mu     sync.Mutex
	labels map[string]label.RemoteLabel
	order  []string

	// ListErr, when set, makes List fail.
	ListErr error
	// CreateErr, UpdateErr, and DeleteErr inject failures keyed by the
	// label name the operation targets.
	CreateErr map[string]error
	UpdateErr map[string]error
	DeleteErr map[string]error

	// Calls records every mutating call as "<op> <name>" in order.
	Calls []string
}

// NewMemory creates a Memory store seeded with the given labels.
func NewMemory(seed ...label.RemoteLabel) *Memory {
	m := &Memory{labels: make(map[string]label.RemoteLabel)}
	for _, l := range seed {
		m.put(l)
	}
	return m
}

func (m *Memory) put(l label.RemoteLabel) {
	if _, ok := m.labels[l.Name]; !ok {
		m.order = append(m.order, l.Name)
	}
	m.labels[l.Name] = l
}

func (m *Memory) remove(name string) {
	delete(m.labels, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// List returns all labels in insertion order.
func (m *Memory) List(_ context.Context) ([]label.RemoteLabel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]label.RemoteLabel, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.labels[name])
	}
	return out, nil
}

// Get returns the named label, or (nil, nil) when absent.
func (m *Memory) Get(_ context.Context, name string) (*label.RemoteLabel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.labels[name]; ok {
		return &l, nil
	}
	return nil, nil
}

// Create adds a new label.
func (m *Memory) Create(_ context.Context, opts CreateOptions) (*label.RemoteLabel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "create "+opts.Name)
	if err := m.CreateErr[opts.Name]; err != nil {
		return nil, err
	}
	if _, ok := m.labels[opts.Name]; ok {
		return nil, fmt.Errorf("label %q already exists", opts.Name)
	}
	color := opts.Color
	if color == "" {
		color = label.DefaultColor
	}
	l := label.RemoteLabel{Name: opts.Name, Color: color, Description: opts.Description}
	m.put(l)
	return &l, nil
}

// Update modifies the named label, renaming it when opts.NewName is set.
func (m *Memory) Update(_ context.Context, name string, opts UpdateOptions) (*label.RemoteLabel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "update "+name)
	if err := m.UpdateErr[name]; err != nil {
		return nil, err
	}
	existing, ok := m.labels[name]
	if !ok {
		return nil, fmt.Errorf("label %q not found", name)
	}
	updated := existing
	if opts.NewName != "" {
		updated.Name = opts.NewName
	}
	if opts.Color != "" {
		updated.Color = opts.Color
	}
	updated.Description = opts.Description
	m.remove(name)
	m.put(updated)
	return &updated, nil
}

// Delete removes the named label.
func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "delete "+name)
	if err := m.DeleteErr[name]; err != nil {
		return err
	}
	if _, ok := m.labels[name]; !ok {
		return fmt.Errorf("label %q not found", name)
	}
	m.remove(name)
	return nil
}

// Snapshot returns the current labels in insertion order, for assertions.
func (m *Memory) Snapshot() []label.RemoteLabel {
	out, _ := m.List(context.Background())
	return out
}

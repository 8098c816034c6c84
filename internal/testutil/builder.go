// Package testutil provides fixture builders for registry tests in the
// composition layer. Build order mirrors the real wiring: users first, then
// tasks.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/taskbook/internal/clock"
	"github.com/zjrosen/taskbook/internal/registry"
)

// BaseTime is the pinned instant every builder clock starts at.
var BaseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Builder accumulates fixture records and loads them into fresh registries.
type Builder struct {
	t     *testing.T
	clock *clock.Manual
	users []registry.UserSpec
	tasks []registry.TaskSpec
}

// NewBuilder creates a builder with a manual clock pinned to BaseTime.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, clock: clock.NewManual(BaseTime)}
}

// Clock returns the builder's manual clock so tests can advance time.
func (b *Builder) Clock() *clock.Manual {
	return b.clock
}

// WithUser adds a user fixture with optional configuration.
func (b *Builder) WithUser(id int64, opts ...UserOption) *Builder {
	spec := defaultUser(id)
	for _, opt := range opts {
		opt(&spec)
	}
	b.users = append(b.users, spec)
	return b
}

// WithTask adds a task fixture with optional configuration.
func (b *Builder) WithTask(id int64, opts ...TaskOption) *Builder {
	spec := defaultTask(id)
	for _, opt := range opts {
		opt(&spec)
	}
	b.tasks = append(b.tasks, spec)
	return b
}

// Build loads all accumulated fixtures and returns the populated registries.
func (b *Builder) Build() (*registry.UserRegistry, *registry.TaskRegistry) {
	b.t.Helper()

	users := registry.NewUserRegistry(b.clock)
	tasks := registry.NewTaskRegistry(b.clock)

	for _, spec := range b.users {
		_, err := users.Add(spec)
		require.NoError(b.t, err)
	}
	for _, spec := range b.tasks {
		_, err := tasks.Add(spec)
		require.NoError(b.t, err)
	}
	return users, tasks
}

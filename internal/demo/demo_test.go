package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/taskbook/internal/clock"
	"github.com/zjrosen/taskbook/internal/registry"
	"github.com/zjrosen/taskbook/internal/testutil"
)

func newSeeded(t *testing.T) *Demo {
	t.Helper()
	d := New(clock.NewManual(testutil.BaseTime))
	d.Seed()
	return d
}

func TestSeed_PopulatesBothRegistries(t *testing.T) {
	d := newSeeded(t)

	// Two created users plus one explicit add; the duplicate and the
	// malformed email are rejected without being stored.
	require.Equal(t, 3, d.Users.Count())
	require.Equal(t, 4, d.Tasks.Count())

	// The explicit id=5 add pushes the counter past it.
	carol, ok := d.Users.Get(5)
	require.True(t, ok)
	assert.Equal(t, "Carol Diaz", carol.Name)
	assert.False(t, carol.Active)

	next, err := d.Users.Create("Dave", "dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(6), next.ID)
}

func TestSeed_WalksTheMutationSurface(t *testing.T) {
	d := newSeeded(t)

	stats := d.Tasks.Statistics()
	assert.Equal(t, 1, stats[registry.StatusTodo])
	assert.Equal(t, 1, stats[registry.StatusInProgress])
	assert.Equal(t, 1, stats[registry.StatusDone])
	assert.Equal(t, 1, stats[registry.StatusCancelled])

	// The docs task is tagged exactly once despite the double AddTag.
	docs := d.Tasks.Search("documentation")
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"docs"}, docs[0].Tags)

	// Past-due and not done: the in-progress review task qualifies; the
	// done release-notes task does not.
	overdue := d.Tasks.ListOverdue()
	require.Len(t, overdue, 1)
	assert.Equal(t, registry.StatusInProgress, overdue[0].Status)
}

func TestAssigneeName_ResolvesAndCaches(t *testing.T) {
	ctx := context.Background()
	d := newSeeded(t)

	alice, ok := d.Users.GetByEmail("alice@example.com")
	require.True(t, ok)

	name := d.AssigneeName(ctx, alice.ID)
	assert.Equal(t, "Alice Chen", name)

	// Once cached, the name survives deletion of the backing record for
	// the duration of the TTL.
	require.True(t, d.Users.Delete(alice.ID))
	assert.Equal(t, "Alice Chen", d.AssigneeName(ctx, alice.ID))
}

func TestAssigneeName_UnknownAndZeroIDsRenderEmpty(t *testing.T) {
	ctx := context.Background()
	d := New(clock.NewManual(testutil.BaseTime))

	assert.Empty(t, d.AssigneeName(ctx, 0))
	assert.Empty(t, d.AssigneeName(ctx, 999))
}

func TestTaskDTOs_ResolveAssignees(t *testing.T) {
	ctx := context.Background()
	d := newSeeded(t)

	dtos := d.TaskDTOs(ctx)
	require.Len(t, dtos, 4)
	assert.Equal(t, "Write documentation", dtos[0].Title)
	assert.Equal(t, "Alice Chen", dtos[0].Assignee)
	assert.Equal(t, "Bob Iverson", dtos[1].Assignee)
}

func TestUserDTOs_KeepInsertionOrder(t *testing.T) {
	d := newSeeded(t)

	dtos := d.UserDTOs()
	require.Len(t, dtos, 3)
	assert.Equal(t, "Alice Chen", dtos[0].Name)
	assert.Equal(t, "Bob Iverson", dtos[1].Name)
	assert.Equal(t, "Carol Diaz", dtos[2].Name)
}

package testutil

import (
	"testing"
	"time"

	"github.com/zjrosen/taskbook/internal/registry"
)

// SampleBoard returns registries populated with the canonical fixture set:
// two active users and one inactive, plus one task per status with task 2
// already overdue relative to the builder clock.
func SampleBoard(t *testing.T) (*registry.UserRegistry, *registry.TaskRegistry, *Builder) {
	t.Helper()

	b := NewBuilder(t).
		WithUser(1, WithName("Alice Chen"), WithEmail("alice@example.com")).
		WithUser(2, WithName("Bob Iverson"), WithEmail("bob@example.com")).
		WithUser(3, WithName("Carol Diaz"), Inactive()).
		WithTask(1, WithTitle("Write documentation"), WithAssignee(1), WithTags("docs")).
		WithTask(2, WithTitle("Review onboarding flow"), WithAssignee(2),
			WithStatus(registry.StatusInProgress), WithDueDate(BaseTime.Add(-24*time.Hour))).
		WithTask(3, WithTitle("Ship release notes"), WithAssignee(1),
			WithStatus(registry.StatusDone), WithDueDate(BaseTime.Add(-2*time.Hour))).
		WithTask(4, WithTitle("Spike search indexing"), WithAssignee(2),
			WithStatus(registry.StatusCancelled))

	users, tasks := b.Build()
	return users, tasks, b
}

package testutil

import (
	"fmt"
	"time"

	"github.com/zjrosen/taskbook/internal/registry"
)

// UserOption configures a user fixture.
type UserOption func(*registry.UserSpec)

func defaultUser(id int64) registry.UserSpec {
	return registry.UserSpec{
		ID:        id,
		Name:      fmt.Sprintf("User %d", id),
		Email:     fmt.Sprintf("user%d@example.com", id),
		CreatedAt: BaseTime,
	}
}

// WithName sets the user's display name.
func WithName(name string) UserOption {
	return func(spec *registry.UserSpec) { spec.Name = name }
}

// WithEmail sets the user's email.
func WithEmail(email string) UserOption {
	return func(spec *registry.UserSpec) { spec.Email = email }
}

// Inactive marks the user explicitly inactive.
func Inactive() UserOption {
	return func(spec *registry.UserSpec) {
		inactive := false
		spec.Active = &inactive
	}
}

// TaskOption configures a task fixture.
type TaskOption func(*registry.TaskSpec)

func defaultTask(id int64) registry.TaskSpec {
	return registry.TaskSpec{
		ID:        id,
		Title:     fmt.Sprintf("Task %d", id),
		CreatedAt: BaseTime,
		DueDate:   BaseTime.Add(48 * time.Hour),
	}
}

// WithTitle sets the task title.
func WithTitle(title string) TaskOption {
	return func(spec *registry.TaskSpec) { spec.Title = title }
}

// WithDescription sets the task description.
func WithDescription(desc string) TaskOption {
	return func(spec *registry.TaskSpec) { spec.Description = desc }
}

// WithStatus sets the task status.
func WithStatus(status registry.Status) TaskOption {
	return func(spec *registry.TaskSpec) { spec.Status = status }
}

// WithAssignee sets the task's assignee id.
func WithAssignee(userID int64) TaskOption {
	return func(spec *registry.TaskSpec) { spec.AssigneeID = userID }
}

// WithDueDate sets the task's due date.
func WithDueDate(due time.Time) TaskOption {
	return func(spec *registry.TaskSpec) { spec.DueDate = due }
}

// WithTags sets the task's tag collection.
func WithTags(tags ...string) TaskOption {
	return func(spec *registry.TaskSpec) { spec.Tags = tags }
}

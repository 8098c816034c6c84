// Package presentation handles output formatting for the registries. The
// registries expose no formatting logic themselves; everything
// display-related lives here.
package presentation

import (
	"time"

	"github.com/zjrosen/taskbook/internal/clock"
	"github.com/zjrosen/taskbook/internal/registry"
)

// UserDTO is the output shape for a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	Active    bool   `json:"active"`
}

// TaskDTO is the output shape for a task. Assignee carries the display name
// resolved by the caller; the registries themselves never cross-reference.
type TaskDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssigneeID  int64    `json:"assignee_id"`
	Assignee    string   `json:"assignee,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	DueDate     string   `json:"due_date"`
	Due         string   `json:"due"`
	Tags        []string `json:"tags"`
}

// NewUserDTO maps a user to its output shape.
func NewUserDTO(u registry.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		Active:    u.Active,
	}
}

// NewTaskDTO maps a task to its output shape. The relative due string is
// computed against now.
func NewTaskDTO(t registry.Task, assignee string, now time.Time) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		Assignee:    assignee,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
		DueDate:     t.DueDate.Format(time.RFC3339),
		Due:         clock.FormatRelativeFrom(t.DueDate, now),
		Tags:        t.Tags,
	}
}

package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/taskbook/internal/registry"
)

var statusColors = map[registry.Status]lipgloss.Color{
	registry.StatusTodo:       lipgloss.Color("#6B7280"),
	registry.StatusInProgress: lipgloss.Color("#3B82F6"),
	registry.StatusDone:       lipgloss.Color("#10B981"),
	registry.StatusCancelled:  lipgloss.Color("#EF4444"),
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	tagStyle     = lipgloss.NewStyle().Faint(true)
)

// statusLabels maps statuses to their board headings.
var statusLabels = map[registry.Status]string{
	registry.StatusTodo:       "TODO",
	registry.StatusInProgress: "IN PROGRESS",
	registry.StatusDone:       "DONE",
	registry.StatusCancelled:  "CANCELLED",
}

// RenderBoard renders tasks grouped by status as a styled console board.
// Tasks keep their insertion order within each section; every status gets a
// section even when empty.
func RenderBoard(tasks []TaskDTO, now time.Time) string {
	byStatus := make(map[string][]TaskDTO, len(registry.Statuses))
	for _, task := range tasks {
		byStatus[task.Status] = append(byStatus[task.Status], task)
	}

	var b strings.Builder
	for _, status := range registry.Statuses {
		section := byStatus[string(status)]
		header := headerStyle.Foreground(statusColors[status]).
			Render(fmt.Sprintf("%s (%d)", statusLabels[status], len(section)))
		b.WriteString(header)
		b.WriteString("\n")

		for _, task := range section {
			b.WriteString(renderTaskLine(task, status, now))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderTaskLine(task TaskDTO, status registry.Status, now time.Time) string {
	line := fmt.Sprintf("  #%d %s", task.ID, task.Title)
	if task.Assignee != "" {
		line += " @" + task.Assignee
	}

	due := fmt.Sprintf("(due %s)", task.Due)
	dueDate, err := time.Parse(time.RFC3339, task.DueDate)
	if err == nil && dueDate.Before(now) && status != registry.StatusDone {
		due = overdueStyle.Render(due)
	}
	line += " " + due

	if len(task.Tags) > 0 {
		line += " " + tagStyle.Render("["+strings.Join(task.Tags, ", ")+"]")
	}
	return line
}

// RenderUsers renders users as plain console lines with an active marker.
func RenderUsers(users []UserDTO) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("USERS (%d)", len(users))))
	b.WriteString("\n")
	for _, user := range users {
		marker := "o"
		if !user.Active {
			marker = "-"
		}
		b.WriteString(fmt.Sprintf("  %s #%d %s <%s>\n", marker, user.ID, user.Name, user.Email))
	}
	return b.String()
}

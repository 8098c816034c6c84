package presentation

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/taskbook/internal/registry"
	"github.com/zjrosen/taskbook/internal/testutil"
)

func TestNewUserDTO(t *testing.T) {
	users, _, _ := testutil.SampleBoard(t)

	user, ok := users.Get(1)
	require.True(t, ok)

	dto := NewUserDTO(user)
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "Alice Chen", dto.Name)
	assert.Equal(t, "alice@example.com", dto.Email)
	assert.Equal(t, testutil.BaseTime.Format(time.RFC3339), dto.CreatedAt)
	assert.True(t, dto.Active)
}

func TestNewTaskDTO_ComputesRelativeDue(t *testing.T) {
	_, tasks, b := testutil.SampleBoard(t)

	task, ok := tasks.Get(2)
	require.True(t, ok)

	dto := NewTaskDTO(task, "Bob Iverson", b.Clock().Now())
	assert.Equal(t, "Review onboarding flow", dto.Title)
	assert.Equal(t, "Bob Iverson", dto.Assignee)
	assert.Equal(t, "in_progress", dto.Status)
	assert.Equal(t, "1d ago", dto.Due)
}

func TestFormatter_EmitsIndentedJSON(t *testing.T) {
	users, _, _ := testutil.SampleBoard(t)

	dtos := make([]UserDTO, 0)
	for _, user := range users.List() {
		dtos = append(dtos, NewUserDTO(user))
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatUsers(dtos))

	var decoded []UserDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "Alice Chen", decoded[0].Name)
	assert.False(t, decoded[2].Active)
}

func TestFormatter_FormatStatistics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatStatistics(map[string]int{
		"todo": 2, "in_progress": 0, "done": 1, "cancelled": 0,
	}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["todo"])
	assert.Equal(t, 1, decoded["done"])
}

func TestRenderBoard_GroupsByStatusWithCounts(t *testing.T) {
	_, tasks, b := testutil.SampleBoard(t)
	now := b.Clock().Now()

	dtos := make([]TaskDTO, 0)
	for _, task := range tasks.List() {
		dtos = append(dtos, NewTaskDTO(task, "", now))
	}

	out := RenderBoard(dtos, now)
	assert.Contains(t, out, "TODO (1)")
	assert.Contains(t, out, "IN PROGRESS (1)")
	assert.Contains(t, out, "DONE (1)")
	assert.Contains(t, out, "CANCELLED (1)")
	assert.Contains(t, out, "#1 Write documentation")
	assert.Contains(t, out, "[docs]")
	assert.Contains(t, out, "(due 1d ago)")
}

func TestRenderBoard_EmptyStatusesStillGetSections(t *testing.T) {
	out := RenderBoard(nil, testutil.BaseTime)
	for _, status := range []string{"TODO (0)", "IN PROGRESS (0)", "DONE (0)", "CANCELLED (0)"} {
		assert.Contains(t, out, status)
	}
}

func TestRenderUsers_MarksInactive(t *testing.T) {
	users, _, _ := testutil.SampleBoard(t)

	dtos := make([]UserDTO, 0)
	for _, user := range users.List() {
		dtos = append(dtos, NewUserDTO(user))
	}

	out := RenderUsers(dtos)
	assert.Contains(t, out, "USERS (3)")
	assert.Contains(t, out, "o #1 Alice Chen <alice@example.com>")
	assert.Contains(t, out, "- #3 Carol Diaz")
}

// Sanity check that the board rendering of a done task never styles its due
// date as overdue, matching the overdue query semantics.
func TestRenderBoard_DoneTasksAreNotMarkedOverdue(t *testing.T) {
	now := testutil.BaseTime
	task := registry.Task{
		ID:      3,
		Title:   "Ship release notes",
		Status:  registry.StatusDone,
		DueDate: now.Add(-2 * time.Hour),
	}
	out := RenderBoard([]TaskDTO{NewTaskDTO(task, "", now)}, now)
	assert.Contains(t, out, "#3 Ship release notes (due 2h ago)")
}

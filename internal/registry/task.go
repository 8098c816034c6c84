package registry

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/taskbook/internal/clock"
)

// Status labels a task's lifecycle position. It is a free-form label, not a
// guarded state machine: any status may be set to any other.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status in display order. Statistics reports a count
// for each of these, including zeroes.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone, StatusCancelled}

// Task is a unit of work. ID and CreatedAt are immutable once stored;
// UpdatedAt is refreshed on add and on every successful mutation. AssigneeID
// is not cross-checked against the user registry.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssigneeID  int64     `json:"assignee_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	DueDate     time.Time `json:"due_date"`
	Tags        []string  `json:"tags"`
}

// clone returns a copy whose tag slice does not alias the stored one.
func (t Task) clone() Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// TaskSpec describes a task to add with an explicit id. An empty Status
// defaults to todo and a zero CreatedAt defaults to the current time.
type TaskSpec struct {
	ID          int64
	Title       string
	Description string
	AssigneeID  int64
	Status      Status
	CreatedAt   time.Time
	DueDate     time.Time
	Tags        []string
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	AssigneeID  *int64
	Status      *Status
	DueDate     *time.Time
	Tags        *[]string
}

// TaskRegistry owns the set of tasks keyed by id. It is safe for concurrent
// use; a single lock guards every operation.
type TaskRegistry struct {
	mu    sync.RWMutex
	clock clock.Clock
	tasks *store[Task]
}

// NewTaskRegistry creates an empty task registry. A nil clock falls back to
// the real one.
func NewTaskRegistry(c clock.Clock) *TaskRegistry {
	if c == nil {
		c = clock.Real{}
	}
	return &TaskRegistry{
		clock: c,
		tasks: newStore[Task](),
	}
}

// Add stores a task with a caller-supplied id. Returns ErrDuplicateID if the
// id is taken and ErrEmptyTitle if the title is empty after trimming.
// Nothing is stored on failure; UpdatedAt is set to the current time on
// success.
func (r *TaskRegistry) Add(spec TaskSpec) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(spec)
}

// Create assigns the next sequential id, status todo, an empty tag
// collection, and the current creation timestamp, then stores the task
// under the same contract as Add.
func (r *TaskRegistry) Create(title, description string, assigneeID int64, dueDate time.Time) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(TaskSpec{
		ID:          r.tasks.nextID,
		Title:       title,
		Description: description,
		AssigneeID:  assigneeID,
		Status:      StatusTodo,
		CreatedAt:   r.clock.Now(),
		DueDate:     dueDate,
		Tags:        []string{},
	})
}

// add validates and stores. Caller holds the lock.
func (r *TaskRegistry) add(spec TaskSpec) (Task, error) {
	if _, exists := r.tasks.get(spec.ID); exists {
		return Task{}, ErrDuplicateID
	}
	if strings.TrimSpace(spec.Title) == "" {
		return Task{}, ErrEmptyTitle
	}

	task := Task{
		ID:          spec.ID,
		Title:       spec.Title,
		Description: spec.Description,
		AssigneeID:  spec.AssigneeID,
		Status:      spec.Status,
		CreatedAt:   spec.CreatedAt,
		UpdatedAt:   r.clock.Now(),
		DueDate:     spec.DueDate,
		Tags:        slices.Clone(spec.Tags),
	}
	if task.Status == "" {
		task.Status = StatusTodo
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = r.clock.Now()
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if err := r.tasks.insert(task.ID, task); err != nil {
		return Task{}, err
	}
	return task.clone(), nil
}

// Get retrieves a task by id.
func (r *TaskRegistry) Get(id int64) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks.get(id)
	return task.clone(), ok
}

// List returns all tasks in insertion order.
func (r *TaskRegistry) List() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(Task) bool { return true })
}

// ListByStatus returns tasks with the exact status, in insertion order.
func (r *TaskRegistry) ListByStatus(status Status) []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(t Task) bool { return t.Status == status })
}

// ListByAssignee returns tasks assigned to the given user id, in insertion
// order.
func (r *TaskRegistry) ListByAssignee(assigneeID int64) []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(func(t Task) bool { return t.AssigneeID == assigneeID })
}

// ListOverdue returns tasks whose due date is strictly before the current
// time and whose status is not done. Cancelled tasks past due are still
// reported.
func (r *TaskRegistry) ListOverdue() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.clock.Now()
	return r.listLocked(func(t Task) bool {
		return t.DueDate.Before(now) && t.Status != StatusDone
	})
}

// Search returns tasks whose title or description contains the term,
// ignoring case, in insertion order.
func (r *TaskRegistry) Search(term string) []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	return r.listLocked(func(t Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle)
	})
}

// listLocked filters tasks in insertion order. Caller holds the lock.
func (r *TaskRegistry) listLocked(match func(Task) bool) []Task {
	result := make([]Task, 0)
	for _, task := range r.tasks.list() {
		if match(task) {
			result = append(result, task.clone())
		}
	}
	return result
}

// Update merges the patch over an existing task and refreshes UpdatedAt.
// The id and creation timestamp are never overwritten. Returns ErrNotFound
// for an absent id and ErrEmptyTitle when a supplied title is empty after
// trimming; the record is untouched on failure.
func (r *TaskRegistry) Update(id int64, patch TaskPatch) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.update(id, patch)
}

// UpdateStatus sets only the status field. Any-to-any transitions are legal.
func (r *TaskRegistry) UpdateStatus(id int64, status Status) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.update(id, TaskPatch{Status: &status})
}

// AddTag appends a tag to the task. Adding a tag that is already present is
// a successful no-op and does not bump UpdatedAt.
func (r *TaskRegistry) AddTag(id int64, tag string) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks.get(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	if slices.Contains(task.Tags, tag) {
		return task.clone(), nil
	}

	tags := append(slices.Clone(task.Tags), tag)
	return r.update(id, TaskPatch{Tags: &tags})
}

// RemoveTag filters exact matches of the tag out of the task. UpdatedAt is
// bumped even when the tag was absent.
func (r *TaskRegistry) RemoveTag(id int64, tag string) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks.get(id)
	if !ok {
		return Task{}, ErrNotFound
	}

	tags := make([]string, 0, len(task.Tags))
	for _, existing := range task.Tags {
		if existing != tag {
			tags = append(tags, existing)
		}
	}
	return r.update(id, TaskPatch{Tags: &tags})
}

// update merges and stores. Caller holds the lock.
func (r *TaskRegistry) update(id int64, patch TaskPatch) (Task, error) {
	task, ok := r.tasks.get(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return Task{}, ErrEmptyTitle
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.AssigneeID != nil {
		task.AssigneeID = *patch.AssigneeID
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Tags != nil {
		task.Tags = slices.Clone(*patch.Tags)
	}
	task.UpdatedAt = r.clock.Now()

	r.tasks.replace(id, task)
	return task.clone(), nil
}

// Delete removes a task and reports whether one existed.
func (r *TaskRegistry) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tasks.remove(id)
}

// Count returns the number of stored tasks.
func (r *TaskRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tasks.len()
}

// Statistics returns the task count per status across all four statuses,
// zero-initialized.
func (r *TaskRegistry) Statistics() map[Status]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[Status]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}
	for _, task := range r.tasks.list() {
		counts[task.Status]++
	}
	return counts
}

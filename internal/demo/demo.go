// Package demo owns the sample-data wiring: it constructs the two
// registries, populates them with records, and exercises the fallible
// operations the way a caller is expected to, logging failures and
// continuing. The registries never log; this layer does.
package demo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/zjrosen/taskbook/internal/cachemanager"
	"github.com/zjrosen/taskbook/internal/clock"
	"github.com/zjrosen/taskbook/internal/log"
	"github.com/zjrosen/taskbook/internal/presentation"
	"github.com/zjrosen/taskbook/internal/registry"
)

// assigneeTTL bounds how long a resolved assignee name is reused while
// rendering.
const assigneeTTL = time.Minute

// Demo holds the composed registries and the render-side lookup cache.
type Demo struct {
	Users *registry.UserRegistry
	Tasks *registry.TaskRegistry

	clock         clock.Clock
	assigneeNames *cachemanager.ReadThroughCache[string, string, int64]
}

// New composes empty registries around the given clock. A nil clock falls
// back to the real one.
func New(c clock.Clock) *Demo {
	if c == nil {
		c = clock.Real{}
	}

	d := &Demo{
		Users: registry.NewUserRegistry(c),
		Tasks: registry.NewTaskRegistry(c),
		clock: c,
	}

	cache := cachemanager.NewInMemoryCacheManager[string, string](
		"assignee-names",
		cachemanager.DefaultExpiration,
		cachemanager.DefaultCleanupInterval,
	)
	d.assigneeNames = cachemanager.NewReadThroughCache[string, string, int64](cache, d.lookupAssignee, false)

	return d
}

func (d *Demo) lookupAssignee(ctx context.Context, id int64) (string, error) {
	user, ok := d.Users.Get(id)
	if !ok {
		return "", fmt.Errorf("resolving assignee %d: %w", id, registry.ErrNotFound)
	}
	return user.Name, nil
}

// AssigneeName resolves a task's assignee to a display name through the
// read-through cache. Unknown assignees render as empty: the registries are
// decoupled and a dangling assignee id is not an error.
func (d *Demo) AssigneeName(ctx context.Context, id int64) string {
	if id == 0 {
		return ""
	}
	name, err := d.assigneeNames.Get(ctx, strconv.FormatInt(id, 10), id, assigneeTTL)
	if err != nil {
		log.Debug(log.CatCache, "assignee lookup missed", "assignee_id", id)
		return ""
	}
	return name
}

// Seed populates both registries with sample records and walks the mutation
// surface: status changes, tag churn, a duplicate add, and an invalid email.
// Every failure is an expected outcome; it is logged and seeding continues.
func (d *Demo) Seed() {
	now := d.clock.Now()

	alice, err := d.Users.Create("Alice Chen", "alice@example.com")
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding user failed", err, "name", "Alice Chen")
	}
	bob, err := d.Users.Create("Bob Iverson", "bob@example.com")
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding user failed", err, "name", "Bob Iverson")
	}

	// Explicit id ahead of the counter; later creates continue past it.
	inactive := false
	if _, err := d.Users.Add(registry.UserSpec{
		ID:     5,
		Name:   "Carol Diaz",
		Email:  "carol@example.com",
		Active: &inactive,
	}); err != nil {
		log.ErrorErr(log.CatDemo, "seeding user failed", err, "name", "Carol Diaz")
	}

	// Expected failures: the duplicate id and the malformed email are both
	// surfaced to this layer and nothing is stored.
	if _, err := d.Users.Add(registry.UserSpec{ID: alice.ID, Name: "Alice Again", Email: "alice2@example.com"}); err != nil {
		log.Warn(log.CatDemo, "rejected sample user", "reason", err.Error())
	}
	if _, err := d.Users.Create("Mallory", "not-an-email"); err != nil {
		log.Warn(log.CatDemo, "rejected sample user", "reason", err.Error())
	}

	docs, err := d.Tasks.Create("Write documentation", "Cover the registry contract", alice.ID, now.Add(48*time.Hour))
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding task failed", err, "title", "Write documentation")
	} else {
		if _, err := d.Tasks.AddTag(docs.ID, "docs"); err != nil {
			log.ErrorErr(log.CatTasks, "tagging failed", err, "task_id", docs.ID)
		}
		// Re-adding the same tag is a no-op by contract.
		if _, err := d.Tasks.AddTag(docs.ID, "docs"); err != nil {
			log.ErrorErr(log.CatTasks, "tagging failed", err, "task_id", docs.ID)
		}
	}

	review, err := d.Tasks.Create("Review onboarding flow", "Walk through first-run experience", bob.ID, now.Add(-24*time.Hour))
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding task failed", err, "title", "Review onboarding flow")
	} else {
		if _, err := d.Tasks.UpdateStatus(review.ID, registry.StatusInProgress); err != nil {
			log.ErrorErr(log.CatTasks, "status change failed", err, "task_id", review.ID)
		}
	}

	ship, err := d.Tasks.Create("Ship release notes", "Summarize the changelog", alice.ID, now.Add(-2*time.Hour))
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding task failed", err, "title", "Ship release notes")
	} else {
		if _, err := d.Tasks.UpdateStatus(ship.ID, registry.StatusDone); err != nil {
			log.ErrorErr(log.CatTasks, "status change failed", err, "task_id", ship.ID)
		}
	}

	backlog, err := d.Tasks.Create("Spike search indexing", "Evaluate substring scans", bob.ID, now.Add(72*time.Hour))
	if err != nil {
		log.ErrorErr(log.CatDemo, "seeding task failed", err, "title", "Spike search indexing")
	} else {
		if _, err := d.Tasks.UpdateStatus(backlog.ID, registry.StatusCancelled); err != nil {
			log.ErrorErr(log.CatTasks, "status change failed", err, "task_id", backlog.ID)
		}
		// Removing an absent tag still succeeds (and bumps the timestamp).
		if _, err := d.Tasks.RemoveTag(backlog.ID, "urgent"); err != nil {
			log.ErrorErr(log.CatTasks, "untagging failed", err, "task_id", backlog.ID)
		}
	}

	log.Info(log.CatDemo, "seeded registries",
		"users", d.Users.Count(),
		"tasks", d.Tasks.Count(),
		"overdue", len(d.Tasks.ListOverdue()),
	)
}

// UserDTOs maps all users to their output shape in insertion order.
func (d *Demo) UserDTOs() []presentation.UserDTO {
	users := d.Users.List()
	result := make([]presentation.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, presentation.NewUserDTO(user))
	}
	return result
}

// TaskDTOs maps all tasks to their output shape in insertion order,
// resolving assignee names through the cache.
func (d *Demo) TaskDTOs(ctx context.Context) []presentation.TaskDTO {
	now := d.clock.Now()
	tasks := d.Tasks.List()
	result := make([]presentation.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, presentation.NewTaskDTO(task, d.AssigneeName(ctx, task.AssigneeID), now))
	}
	return result
}

// Now exposes the demo clock's current instant for rendering.
func (d *Demo) Now() time.Time {
	return d.clock.Now()
}

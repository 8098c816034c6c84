package registry

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/taskbook/internal/clock"
)

// emailPattern is the shape a user email must match: local@domain.tld with
// no whitespace or extra @ signs.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is a registered person. ID and CreatedAt are immutable once stored.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// UserSpec describes a user to add with an explicit id. Active is optional
// and defaults to true when nil. A zero CreatedAt defaults to the current
// time.
type UserSpec struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
	Active    *bool
}

// UserPatch carries a partial update. Nil fields are left unchanged.
type UserPatch struct {
	Name   *string
	Email  *string
	Active *bool
}

// UserRegistry owns the set of users keyed by id. It is safe for concurrent
// use; a single lock guards every operation.
type UserRegistry struct {
	mu    sync.RWMutex
	clock clock.Clock
	users *store[User]
}

// NewUserRegistry creates an empty user registry. A nil clock falls back to
// the real one.
func NewUserRegistry(c clock.Clock) *UserRegistry {
	if c == nil {
		c = clock.Real{}
	}
	return &UserRegistry{
		clock: c,
		users: newStore[User](),
	}
}

// Add stores a user with a caller-supplied id. Returns ErrDuplicateID if the
// id is taken and ErrInvalidEmail if the email is malformed. Nothing is
// stored on failure.
func (r *UserRegistry) Add(spec UserSpec) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(spec)
}

// Create assigns the next sequential id and the current timestamp, then
// stores the user under the same contract as Add.
func (r *UserRegistry) Create(name, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.add(UserSpec{
		ID:        r.users.nextID,
		Name:      name,
		Email:     email,
		CreatedAt: r.clock.Now(),
	})
}

// add validates and stores. Caller holds the lock.
func (r *UserRegistry) add(spec UserSpec) (User, error) {
	if _, exists := r.users.get(spec.ID); exists {
		return User{}, ErrDuplicateID
	}
	if !emailPattern.MatchString(spec.Email) {
		return User{}, ErrInvalidEmail
	}

	user := User{
		ID:        spec.ID,
		Name:      spec.Name,
		Email:     spec.Email,
		CreatedAt: spec.CreatedAt,
		Active:    true,
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.clock.Now()
	}
	if spec.Active != nil {
		user.Active = *spec.Active
	}

	if err := r.users.insert(user.ID, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Get retrieves a user by id.
func (r *UserRegistry) Get(id int64) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.get(id)
}

// GetByEmail retrieves the first user whose email matches, ignoring case.
func (r *UserRegistry) GetByEmail(email string) (User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users.list() {
		if strings.EqualFold(user.Email, email) {
			return user, true
		}
	}
	return User{}, false
}

// List returns all users in insertion order.
func (r *UserRegistry) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.list()
}

// ListActive returns users whose active flag is set, in insertion order.
func (r *UserRegistry) ListActive() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]User, 0)
	for _, user := range r.users.list() {
		if user.Active {
			result = append(result, user)
		}
	}
	return result
}

// Update merges the patch over an existing user. The id and creation
// timestamp are never overwritten. Returns ErrNotFound for an absent id and
// ErrInvalidEmail when a supplied email is malformed; the record is
// untouched on failure.
func (r *UserRegistry) Update(id int64, patch UserPatch) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users.get(id)
	if !ok {
		return User{}, ErrNotFound
	}
	if patch.Email != nil && !emailPattern.MatchString(*patch.Email) {
		return User{}, ErrInvalidEmail
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}

	r.users.replace(id, user)
	return user, nil
}

// Delete removes a user and reports whether one existed.
func (r *UserRegistry) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.users.remove(id)
}

// Count returns the number of stored users.
func (r *UserRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.len()
}

// SearchByName returns users whose name contains the term, ignoring case,
// in insertion order.
func (r *UserRegistry) SearchByName(term string) []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	result := make([]User, 0)
	for _, user := range r.users.list() {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			result = append(result, user)
		}
	}
	return result
}

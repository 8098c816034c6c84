package registry

import "errors"

// ErrDuplicateID is returned when an add targets an identifier that already exists.
var ErrDuplicateID = errors.New("identifier already exists")

// ErrNotFound is returned when an operation targets an absent identifier.
var ErrNotFound = errors.New("record not found")

// ErrInvalidEmail is returned when a supplied email does not match the expected shape.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrEmptyTitle is returned when a supplied title is empty after trimming whitespace.
var ErrEmptyTitle = errors.New("title cannot be empty")

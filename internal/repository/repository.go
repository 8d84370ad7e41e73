package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import "errors"

// Store-level conditions that callers need to distinguish. Implementations
// wrap their driver errors with these sentinels so the service layer never
// inspects driver types directly.
var (
	// ErrDuplicate signals a uniqueness violation, e.g. a second active
	// application for the same (job, candidate) pair.
	ErrDuplicate = errors.New("duplicate row")

	// ErrUndefinedColumn signals a write against a column that has not been
	// provisioned yet. The side-effect coordinator reacts by provisioning
	// the column and retrying once.
	ErrUndefinedColumn = errors.New("undefined column")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

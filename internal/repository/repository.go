package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// ErrDuplicate is returned by Create operations when a uniqueness constraint
// is violated (e.g., registering an already-taken email).
var ErrDuplicate = errors.New("duplicate record")

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

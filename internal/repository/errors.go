// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios. For example,
// ErrCafeNotFound marks a definitive "no such tenant" state that must not be
// retried, while any other error bubbling out of a repository is a storage
// fault the caller may safely retry.
package repository

import "errors"

// ErrCafeNotFound is returned when no café matches the requested slug or id.
// Handlers should translate this into an HTTP 404 response.
var ErrCafeNotFound = errors.New("cafe not found")

// ErrDuplicateSlug is returned when a café with the same slug already exists.
// Creation must fail closed on this error: no suffixing, no overwrite.
// Handlers should translate this into an HTTP 409 response.
var ErrDuplicateSlug = errors.New("duplicate slug")

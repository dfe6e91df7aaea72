// Package repository defines persistence interfaces for the domain entities.
// Adapters under internal/infra/adapter/persistence implement them.
package repository

import "errors"

// ErrDuplicateKey is returned by Create/Insert operations when a storage-level
// uniqueness constraint rejects the row. Adapters translate their driver's
// constraint-violation error into this sentinel so callers can branch on it
// without importing driver packages.
var ErrDuplicateKey = errors.New("duplicate key")

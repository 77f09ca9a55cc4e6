package models

import "errors"

// Domain errors shared by storage, selector and services
var (
	// ErrStorageUnavailable indicates the database could not be opened or migrated.
	// It is fatal at startup.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound indicates no record has the requested identifier
	ErrNotFound = errors.New("record not found")

	// ErrUnknownCollection indicates a collection name outside the schema registry
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownField indicates a field name the collection does not define
	ErrUnknownField = errors.New("unknown field")

	// ErrNotSelectable indicates a collection without a position selector
	ErrNotSelectable = errors.New("collection has no selector")

	// ErrPositionOutOfRange indicates a position outside the current listing
	ErrPositionOutOfRange = errors.New("position out of range")
)

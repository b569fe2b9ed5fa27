package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the state shared by value and void results
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// ErrorDescription returns the failure description, empty on success
	ErrorDescription() string
	// Id identifies the constructed result
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider extends Outcome with access to the carried value
type ValueProvider[T any] interface {
	Outcome
	// Value returns the successful result value
	Value() T
}

var (
	_ Outcome            = Result[int]{}
	_ ValueProvider[int] = Result[int]{}
)

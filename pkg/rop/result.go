package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result holds either a successful value of type T or a failure description.
type Result[T any] struct {
	id          uuid.UUID
	createdAt   time.Time
	value       T
	description string
	isSuccess   bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](description string) Result[T] {
	return Result[T]{
		description: description,
		isSuccess:   false,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

// FromError builds a failure from err, or a success with v when err is nil.
func FromError[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](err.Error())
}

// FailFrom carries the failure of another result over to a new payload type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		description: from.description,
		isSuccess:   false,
		createdAt:   from.createdAt,
		id:          from.id,
	}
}

// Value returns the payload. It is the zero value of T when r is a failure.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) ErrorDescription() string {
	return r.description
}

// Err returns nil for a success and the description as an error otherwise.
func (r Result[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	return errors.New(r.description)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.id != uuid.Nil
}

func (r Result[T]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

package repository

import (
	"context"

	"propal/internal/model"
)

// UserRepository is the record store: the whole user list is loaded and
// rewritten as one unit. There is no locking, so concurrent read-modify-write
// cycles can lose updates.
type UserRepository interface {
	// ReadAll returns every record. Missing or corrupt data yields an empty
	// list rather than an error; an error means the backend was unreachable.
	ReadAll(ctx context.Context) ([]model.User, error)
	// WriteAll replaces the stored list with users.
	WriteAll(ctx context.Context, users []model.User) error
}

// nonNil keeps an empty list serialised as [] rather than null.
func nonNil(users []model.User) []model.User {
	if users == nil {
		return []model.User{}
	}
	return users
}

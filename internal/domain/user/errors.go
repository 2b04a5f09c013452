package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")

	// Repository errors
	ErrDatabaseQuery  = errors.New("database query failed")
	ErrDatabaseInsert = errors.New("database insert failed")
)

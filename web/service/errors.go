// Package service implements the business logic of taskdeck on top of the
// database layer.
package service

import "errors"

// Outcomes the controllers translate into client-facing responses. Anything
// else bubbling out of a service is an internal error: logged in full,
// reported generically.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrWrongCredentials = errors.New("invalid username or password")
	ErrCategoryInUse    = errors.New("category still contains tasks or notes")
)

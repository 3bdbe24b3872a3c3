package discord

import (
	"errors"
	"fmt"
)

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrEmptyApplicationID indicates that the application ID to register commands for is not set.
var ErrEmptyApplicationID = errors.New("application ID must be set")

// ErrEmptyScope indicates that the guild ID to register commands in is not set.
var ErrEmptyScope = errors.New("guild ID must be set")

// ErrNotApplicationCommand indicates that the given interaction is not a chat input command.
var ErrNotApplicationCommand = errors.New("interaction is not a chat input command")

// ErrUnknownCommand indicates that an invocation names a command that is not in the catalog.
var ErrUnknownCommand = errors.New("unknown command")

// ErrAlreadyReplied indicates that a reply was already sent for the invocation.
var ErrAlreadyReplied = errors.New("invocation is already replied")

// PublishError is returned by Publish when the platform rejects the command catalog.
type PublishError struct {
	ApplicationID string
	Scope         string
	Err           error
}

// Error returns a message describing which registration failed.
func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish commands for application %s in scope %s: %s", e.ApplicationID, e.Scope, e.Err.Error())
}

// Unwrap returns the underlying platform error.
func (e *PublishError) Unwrap() error {
	return e.Err
}

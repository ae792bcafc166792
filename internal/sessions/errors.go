package sessions

import "errors"

var (
	// ErrSessionNotFound is returned on read paths for a session that
	// does not exist or is not visible to the caller.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnauthorized is returned by mutating operations when the
	// session does not exist OR belongs to another user. The two cases
	// are deliberately indistinguishable, so that callers cannot probe
	// for the existence of other users' sessions.
	ErrUnauthorized = errors.New("not allowed")

	ErrTemplateNotFound  = errors.New("workout package not found")
	ErrInvalidSetPayload = errors.New("invalid set payload")
	ErrSessionCompleted  = errors.New("session already completed")
)

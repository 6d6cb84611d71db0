package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Matching errors. Every one of these is an expected, client-correctable
// condition: the operation that returns it has written nothing to the store.
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrChoiceNotFound      = errors.New("one or more choices not found")
	ErrAlreadyTeamed       = errors.New("student is already in a team")
	ErrTargetAlreadyTeamed = errors.New("chosen student is already in a team")
	ErrNoAttemptsLeft      = errors.New("no edit attempts left")
	ErrSelectionClosed     = errors.New("selection phase is closed")
	ErrInvalidChoices      = errors.New("must select exactly two distinct teammates")
	ErrSelfSelection       = errors.New("cannot select yourself")
	ErrCrossBatch          = errors.New("cross-batch selection not allowed")
	ErrInvalidTeamSize     = errors.New("team must have between one and three members")
	ErrInvalidBatch        = errors.New("invalid batch")

	// ErrMemberClaimed signals that the conditional team-assignment step
	// found a member whose team_id was no longer null at commit time. The
	// matcher treats this as losing the race, not as a failure.
	ErrMemberClaimed = errors.New("a member was claimed by another team")
)

// Is returns whether err matches target or any error in errList. It
// simplifies checking a single error against several sentinels at once.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

package domain

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MesaageUserNotAllowed       = "user not allowed"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	ErrHouseNotFound  = errors.New("house not found")
	ErrNotHouseMember = errors.New("user is not a member of the house")
)

// ValidationError points at the first offending entry of a batch request.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid selection at index %d: %s (%s)", e.Index, e.Msg, e.Field)
	}
	return fmt.Sprintf("invalid selection at index %d: %s", e.Index, e.Msg)
}

// LockConflictError carries the current holder so the UI can explain who is
// editing and until when.
type LockConflictError struct {
	Holder    string
	ExpiresAt time.Time
}

func (e *LockConflictError) Error() string {
	return fmt.Sprintf("list is being edited by another session (holder %s, expires %s)",
		e.Holder, e.ExpiresAt.Format(time.RFC3339))
}

package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Authentication
	ErrTokenExpired         = fmt.Errorf("token expired")
	ErrTokenMalformed       = fmt.Errorf("token malformed")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
	ErrUnresolvableIdentity = fmt.Errorf("identity cannot be resolved")
	ErrMissingBearer        = fmt.Errorf("missing Authorization header (Bearer)")
	ErrMissingAPIKey        = fmt.Errorf("missing api key")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrInvalidPassword      = fmt.Errorf("password does not meet complexity rules")
	ErrMalformedHash        = fmt.Errorf("stored password hash is malformed")

	// Lookups
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrNotParticipant       = fmt.Errorf("user is not a participant of the conversation")
	ErrRequestNotFound      = fmt.Errorf("friend request not found")

	// Presence persistence
	ErrPresenceConflict = fmt.Errorf("presence update conflict, retries exhausted")

	ErrEmptyWords = fmt.Errorf("no words have been found")
)

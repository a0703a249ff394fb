package errorvalues

import "errors"

var (
	ErrUserNotFound  = errors.New("user doesn't exists")
	ErrStepsNotFound = errors.New("no steps logged for given date")
	ErrValidation    = errors.New("given data is invalid")
	ErrNoIdentity    = errors.New("no user identity in context")
)

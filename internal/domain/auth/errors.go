package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrAccountSuspended   = errors.New("this account has been suspended")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrResetCodeInvalid   = errors.New("invalid reset code or it is expired")
	ErrAccountNotFound    = errors.New("there is no account registered with that email")
)

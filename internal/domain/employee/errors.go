package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrNationalIDExists   = errors.New("national id already registered")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
)

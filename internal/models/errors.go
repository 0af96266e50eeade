package models

import (
	"errors"
)

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrItemNotFound       = errors.New("models: item not found")
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrEmptyItemName      = errors.New("name is required")
	ErrNegativeQuantity   = errors.New("quantity must be zero or greater")
)

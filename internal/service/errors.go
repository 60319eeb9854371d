package service

import "errors"

// ErrValidation wraps input errors whose message is safe to show to clients.
var ErrValidation = errors.New("invalid input")

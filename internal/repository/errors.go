package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a unique constraint would be violated.
	ErrDuplicate = errors.New("record already exists")
	// ErrTeamFull indicates the roster already holds the maximum member count.
	ErrTeamFull = errors.New("team is full")
	// ErrMemberNotFound indicates the team exists but holds no matching member.
	ErrMemberNotFound = errors.New("member not found")
)

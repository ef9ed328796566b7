package app

import "errors"

var (
	ErrNotLoggedIn      = errors.New("no roommate is logged in")
	ErrNotAdmin         = errors.New("only an admin can do this")
	ErrCannotDeleteSelf = errors.New("an admin cannot delete themself")
	ErrUnknownRoommate  = errors.New("unknown roommate")
	ErrUnknownTask      = errors.New("unknown task")
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyMessage     = errors.New("message is empty")
)

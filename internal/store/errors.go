package store

import "errors"

var (
	// ErrRoomNotFound is returned when a room code is not in the store
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomFull is returned when a room is at its configured max players
	ErrRoomFull = errors.New("room is full")

	// ErrNicknameTaken is returned when the nickname is already used in the room
	ErrNicknameTaken = errors.New("nickname already taken in this room")

	// ErrInvalidNickname is returned when a nickname is outside the 2-15 char range
	ErrInvalidNickname = errors.New("nickname must be 2-15 characters")
)

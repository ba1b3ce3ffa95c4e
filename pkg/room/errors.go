package room

import "errors"

// ErrRoomNotFound is returned when no live room has the code
var ErrRoomNotFound = errors.New("room not found")

// ErrWrongPhase is returned when the action isn't allowed in the room's current phase
var ErrWrongPhase = errors.New("action is not allowed in the current phase")

// ErrNotHost is returned when someone other than the host tries to start the game
var ErrNotHost = errors.New("only the host can start the game")

// ErrRoomFull is returned when the room already seats the maximum number of players
var ErrRoomFull = errors.New("room is full")

// ErrNotAMember is returned when the player is not seated in the room
var ErrNotAMember = errors.New("you are not part of this game")

// ErrNameRequired is returned when a new player joins without a name
var ErrNameRequired = errors.New("name is required to join")

// ErrInvalidContent is returned when a chat event isn't one of the known emoji or phrases
var ErrInvalidContent = errors.New("invalid chat content")

package training

import "github.com/abhisek/hearo/internal/game"

// engineEventMsg wraps an engine event delivered through the event channel.
type engineEventMsg struct {
	Event game.Event
}

// engineStartFailedMsg reports that the engine could not start.
type engineStartFailedMsg struct {
	Err error
}

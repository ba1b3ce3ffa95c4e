package room

import (
	"time"

	"github.com/google/uuid"
)

// ChatEvent is an emoji reaction or quick chat phrase sent by a player
type ChatEvent struct {
	ID         string   `json:"id"`
	PlayerID   string   `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Kind       ChatKind `json:"type"`
	Content    string   `json:"content"`
	// Timestamp is in milliseconds since the epoch
	Timestamp int64 `json:"timestamp"`
}

func newEventID() string {
	return uuid.New().String()
}

// chatLog holds the most recent chat events of a room
type chatLog struct {
	events []*ChatEvent
	limit  int
}

func newChatLog(limit int) *chatLog {
	return &chatLog{
		events: make([]*ChatEvent, 0, limit),
		limit:  limit,
	}
}

// add appends the event and drops the oldest ones past the limit
func (c *chatLog) add(event *ChatEvent) {
	e := append(c.events, event)
	count := len(e)
	if count > c.limit {
		e = e[count-c.limit:]
	}

	c.events = e
}

// all returns a copy of every retained event, oldest first
func (c *chatLog) all() []*ChatEvent {
	return append([]*ChatEvent{}, c.events...)
}

// since returns the events newer than t, oldest first
func (c *chatLog) since(t time.Time) []*ChatEvent {
	cutoff := t.UnixMilli()
	events := make([]*ChatEvent, 0, len(c.events))
	for _, event := range c.events {
		if event.Timestamp > cutoff {
			events = append(events, event)
		}
	}

	return events
}

package room

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a player watching a room over a websocket
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is closed when the connection goes away
	Close chan struct{}

	// CloseError contains the reason why the connection was closed
	CloseError error

	PlayerID string
	Code     string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID, code string) *Client {
	return &Client{
		send:     make(chan interface{}, 16),
		Close:    make(chan struct{}),
		Conn:     conn,
		PlayerID: playerID,
		Code:     NormalizeCode(code),
	}
}

// Send queues a message for the client
// It returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.PlayerID, c.Code)
}

// followRetry is how long Follow waits before resending a view the client had no room for
var followRetry = time.Millisecond * 250

// Follow sends the client's public view of the room every time the room changes,
// until the client closes or the room disappears
func (r *Registry) Follow(c *Client) {
	log := r.logger.WithField("client", c.String())
	lastVersion := 0

	for {
		var retry <-chan time.Time
		changed, version, err := r.Watch(c.Code)
		if err != nil {
			log.WithError(err).Debug("stopped following room")
			return
		}

		if version != lastVersion {
			view, ok := r.GetPublicRoom(c.Code, c.PlayerID)
			if !ok {
				return
			}

			if c.Send(view) {
				lastVersion = view.Version
			} else {
				log.Warn("client is not keeping up, retrying")
				retry = time.After(followRetry)
			}
		}

		select {
		case <-changed:
		case <-retry:
		case <-c.Close:
			log.Debug("client closed")
			return
		}
	}
}

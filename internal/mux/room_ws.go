package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"unoroom-server/pkg/room"
)

const writeWait = time.Second * 10

// getRoomCodeWS pushes the player's view of the room every time it changes
func (m *Mux) getRoomCodeWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	pingPeriod := m.config.pingPeriod
	pongWait := pingPeriod * 10 / 9

	return func(w http.ResponseWriter, r *http.Request) {
		code := roomCode(r)
		playerID := r.FormValue("playerId")
		if !m.registry.IsPlayerInRoom(code, playerID) {
			writeRoomError(w, room.ErrNotAMember)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := room.NewClient(conn, playerID, code)
		go m.registry.Follow(client)

		writeLoopDone := make(chan struct{})
		defer func() {
			close(client.Close)
			<-writeLoopDone
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(client, pingPeriod, writeLoopDone)
		m.webSocketReadLoop(client)
	}
}

func (m *Mux) webSocketWriteLoop(client *room.Client, pingPeriod time.Duration, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-client.Close:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = client.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg := <-client.SendChan():
			logrus.WithField("client", client.String()).Trace("sending room to client")

			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithField("client", client.String()).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop discards anything the client sends, it only runs to process pongs and close frames
func (m *Mux) webSocketReadLoop(client *room.Client) {
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("client", client.String()).Error("could not read message")
			}

			client.CloseError = err
			return
		}
	}
}

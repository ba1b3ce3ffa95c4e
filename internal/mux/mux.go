package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"unoroom-server/internal/config"
	"unoroom-server/pkg/room"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config   muxConfig
	version  string
	registry *room.Registry
}

const defaultPingPeriod = time.Second * 54

type muxConfig struct {
	// pingPeriod is how often websocket clients are pinged
	pingPeriod time.Duration
}

// NewMux returns a new HTTP mux serving the rooms in registry
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
		config: muxConfig{
			pingPeriod: config.Instance().PingPeriod(),
		},
	}

	if this.config.pingPeriod <= 0 {
		this.config.pingPeriod = defaultPingPeriod
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
		r.Methods(http.MethodPost).Path("/room/join").Handler(this.postRoomJoin())
		r.Methods(http.MethodPost).Path("/room/reconnect").Handler(this.postRoomReconnect())
	}

	// requires an existing room
	{
		rr := this.Router.PathPrefix("/room/{code:[A-Za-z0-9]{5}}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomCode())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomCodeWS())
		rr.Methods(http.MethodPost).Path("/start").Handler(this.postRoomCodeStart())
		rr.Methods(http.MethodPost).Path("/play").Handler(this.postRoomCodePlay())
		rr.Methods(http.MethodPost).Path("/draw").Handler(this.postRoomCodeDraw())
		rr.Methods(http.MethodPost).Path("/chat").Handler(this.postRoomCodeChat())
		rr.Methods(http.MethodPost).Path("/avatar").Handler(this.postRoomCodeAvatar())
	}

	return this
}

// roomMiddleware normalizes the room code and rejects unknown rooms
func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := room.NormalizeCode(gmux.Vars(r)["code"])
		if _, ok := m.registry.GetRoom(code); !ok {
			writeRoomError(w, room.ErrRoomNotFound)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, code)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func roomCode(r *http.Request) string {
	return r.Context().Value(ctxRoomKey).(string)
}

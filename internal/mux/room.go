package mux

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"unoroom-server/pkg/deck"
	"unoroom-server/pkg/room"
)

var validDisplayNameRx = regexp.MustCompile(`^[\p{L}\p{N} ]{1,40}\z`)

var errInvalidName = errors.New("name must only contain letters, numbers, and spaces, and be 40 characters or less")

var errMissingField = errors.New("missing required field")
var errPlayerIDRequired = fmt.Errorf("%w: playerId", errMissingField)
var errCardIDRequired = fmt.Errorf("%w: cardId", errMissingField)

var errInvalidChatType = fmt.Errorf("%w: type must be emoji or quickchat", room.ErrInvalidContent)
var errInvalidEmoji = fmt.Errorf("%w: unknown emoji", room.ErrInvalidContent)
var errInvalidMessage = fmt.Errorf("%w: unknown message", room.ErrInvalidContent)

// validName trims the name and checks it can be shown to other players
func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", room.ErrNameRequired
	}

	if !validDisplayNameRx.MatchString(name) {
		return "", errInvalidName
	}

	return name, nil
}

type postRoomPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Avatar     string `json:"avatar"`
}

type postRoomResponse struct {
	RoomID string `json:"roomId"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.PlayerID == "" {
			writeJSONError(w, http.StatusBadRequest, errPlayerIDRequired)
			return
		}

		name, err := validName(pp.PlayerName)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		s := m.registry.CreateRoom(pp.PlayerID, name, pp.Avatar)
		writeJSON(w, http.StatusCreated, postRoomResponse{RoomID: s.Code})
	}
}

type postRoomJoinPayload struct {
	RoomID     string `json:"roomId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Avatar     string `json:"avatar"`
}

type postRoomJoinResponse struct {
	Success     bool             `json:"success"`
	Reconnected bool             `json:"reconnected"`
	Room        *room.PublicView `json:"room"`
}

// postRoomJoin seats the player, or reconnects them if they already have a seat
func (m *Mux) postRoomJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomJoinPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.PlayerID == "" || pp.RoomID == "" {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("%w: roomId and playerId", errMissingField))
			return
		}

		name, err := validName(pp.PlayerName)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		code := room.NormalizeCode(pp.RoomID)
		reconnected := m.registry.IsPlayerInRoom(code, pp.PlayerID)
		if reconnected {
			_, err = m.registry.ReconnectPlayer(code, pp.PlayerID, name)
		} else {
			_, err = m.registry.JoinRoom(code, pp.PlayerID, name, pp.Avatar)
		}

		if err != nil {
			writeRoomError(w, err)
			return
		}

		view, _ := m.registry.GetPublicRoom(code, pp.PlayerID)
		writeJSON(w, http.StatusOK, postRoomJoinResponse{
			Success:     true,
			Reconnected: reconnected,
			Room:        view,
		})
	}
}

type postRoomReconnectPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	RoomID     string `json:"roomId"`
}

type postRoomReconnectResponse struct {
	Reconnected bool               `json:"reconnected"`
	Room        *room.PublicView   `json:"room,omitempty"`
	Rooms       []room.RoomSummary `json:"rooms"`
}

// postRoomReconnect puts a returning player back in their room
// Without a roomId, the player's game in progress is picked first, then a lobby.
func (m *Mux) postRoomReconnect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomReconnectPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.PlayerID == "" {
			writeJSONError(w, http.StatusBadRequest, errPlayerIDRequired)
			return
		}

		// the name is optional here, a seated player keeps theirs
		if strings.TrimSpace(pp.PlayerName) != "" {
			name, err := validName(pp.PlayerName)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			pp.PlayerName = name
		}

		log := logrus.WithField("playerID", pp.PlayerID)

		if pp.RoomID != "" {
			code := room.NormalizeCode(pp.RoomID)
			if _, err := m.registry.ReconnectPlayer(code, pp.PlayerID, pp.PlayerName); err != nil {
				log.WithError(err).WithField("room", code).Debug("could not reconnect")
				writeJSON(w, http.StatusOK, postRoomReconnectResponse{Rooms: []room.RoomSummary{}})
				return
			}

			view, _ := m.registry.GetPublicRoom(code, pp.PlayerID)
			writeJSON(w, http.StatusOK, postRoomReconnectResponse{
				Reconnected: true,
				Room:        view,
				Rooms:       m.registry.FindPlayerRooms(pp.PlayerID),
			})
			return
		}

		s, rooms, err := m.registry.ResolveSession(pp.PlayerID, pp.PlayerName)
		if err != nil {
			writeRoomError(w, err)
			return
		}

		if s == nil {
			writeJSON(w, http.StatusOK, postRoomReconnectResponse{Rooms: rooms})
			return
		}

		view, _ := m.registry.GetPublicRoom(s.Code, pp.PlayerID)
		writeJSON(w, http.StatusOK, postRoomReconnectResponse{
			Reconnected: true,
			Room:        view,
			Rooms:       rooms,
		})
	}
}

// getRoomCode returns the public view of the room for a seated player
func (m *Mux) getRoomCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := roomCode(r)
		playerID := r.FormValue("playerId")
		if playerID == "" {
			writeJSONError(w, http.StatusBadRequest, errPlayerIDRequired)
			return
		}

		if !m.registry.IsPlayerInRoom(code, playerID) {
			writeRoomError(w, room.ErrNotAMember)
			return
		}

		view, ok := m.registry.GetPublicRoom(code, playerID)
		if !ok {
			writeRoomError(w, room.ErrRoomNotFound)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

type playerPayload struct {
	PlayerID string `json:"playerId"`
}

// roomAction decodes the payload, runs fn and answers with the caller's view of the room
func (m *Mux) roomAction(w http.ResponseWriter, r *http.Request, payload interface{}, playerID *string, fn func(code string) error) {
	if !decodeRequest(w, r, payload) {
		return
	}

	if *playerID == "" {
		writeJSONError(w, http.StatusBadRequest, errPlayerIDRequired)
		return
	}

	code := roomCode(r)
	if err := fn(code); err != nil {
		writeRoomError(w, err)
		return
	}

	view, ok := m.registry.GetPublicRoom(code, *playerID)
	if !ok {
		writeRoomError(w, room.ErrRoomNotFound)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (m *Mux) postRoomCodeStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerPayload
		m.roomAction(w, r, &pp, &pp.PlayerID, func(code string) error {
			_, err := m.registry.StartGame(code, pp.PlayerID)
			return err
		})
	}
}

type playPayload struct {
	PlayerID    string `json:"playerId"`
	CardID      string `json:"cardId"`
	ChosenColor string `json:"chosenColor"`
}

func (m *Mux) postRoomCodePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playPayload
		m.roomAction(w, r, &pp, &pp.PlayerID, func(code string) error {
			if pp.CardID == "" {
				return errCardIDRequired
			}

			color, _ := deck.ParseColor(pp.ChosenColor)
			_, err := m.registry.PlayCard(code, pp.PlayerID, pp.CardID, color)
			return err
		})
	}
}

func (m *Mux) postRoomCodeDraw() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerPayload
		m.roomAction(w, r, &pp, &pp.PlayerID, func(code string) error {
			_, err := m.registry.DrawCard(code, pp.PlayerID)
			return err
		})
	}
}

type chatPayload struct {
	PlayerID string `json:"playerId"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

func (m *Mux) postRoomCodeChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp chatPayload
		m.roomAction(w, r, &pp, &pp.PlayerID, func(code string) error {
			kind := room.ChatKind(pp.Type)
			switch kind {
			case room.ChatEmoji:
				if !room.IsEmoji(pp.Content) {
					return errInvalidEmoji
				}
			case room.ChatQuickChat:
				if !room.IsQuickChat(pp.Content) {
					return errInvalidMessage
				}
			default:
				return errInvalidChatType
			}

			_, err := m.registry.SendChatEvent(code, pp.PlayerID, kind, pp.Content)
			return err
		})
	}
}

type avatarPayload struct {
	PlayerID string `json:"playerId"`
	Avatar   string `json:"avatar"`
}

func (m *Mux) postRoomCodeAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp avatarPayload
		m.roomAction(w, r, &pp, &pp.PlayerID, func(code string) error {
			_, err := m.registry.UpdateAvatar(code, pp.PlayerID, pp.Avatar)
			return err
		})
	}
}

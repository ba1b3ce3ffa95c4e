package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unoroom-server/pkg/room"
)

func newTestServer() (*httptest.Server, *room.Registry) {
	registry := newTestRegistry()
	return httptest.NewServer(NewMux("", registry)), registry
}

// createRoom creates a room hosted by playerID and returns its code
func createRoom(t *testing.T, ts *httptest.Server, playerID, name string) string {
	t.Helper()

	var resp postRoomResponse
	assertPost(t, ts, "/room", postRoomPayload{PlayerID: playerID, PlayerName: name}, &resp, http.StatusCreated)
	require.Len(t, resp.RoomID, 5)

	return resp.RoomID
}

func TestMux_postPlayer(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	var resp postPlayerResponse
	assertPost(t, ts, "/player", "{}", &resp, http.StatusCreated)
	assert.Len(t, resp.ID, 36)
	assert.Contains(t, resp.Name, " ")
}

func TestMux_postRoom(t *testing.T) {
	ts, registry := newTestServer()
	defer ts.Close()

	var errObj errorResponse
	assertPostWithContentType(t, ts, "/room", "text/plain", "{}", &errObj, http.StatusUnsupportedMediaType)
	assertPost(t, ts, "/room", "not json", &errObj, http.StatusBadRequest)

	assertPost(t, ts, "/room", postRoomPayload{PlayerName: "Alice"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "missing required field: playerId", errObj.Message)

	assertPost(t, ts, "/room", postRoomPayload{PlayerID: "a", PlayerName: "  "}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "name is required to join", errObj.Message)

	assertPost(t, ts, "/room", postRoomPayload{PlayerID: "a", PlayerName: "<b>Alice</b>"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, errInvalidName.Error(), errObj.Message)

	var resp postRoomResponse
	assertPost(t, ts, "/room", postRoomPayload{PlayerID: "a", PlayerName: " Alice ", Avatar: "owl"}, &resp, http.StatusCreated)

	s, ok := registry.GetRoom(resp.RoomID)
	require.True(t, ok)
	assert.Equal(t, "Alice", s.Players[0].Name)
	assert.Equal(t, "owl", s.Players[0].Avatar)
}

func TestMux_getRoomCode(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")

	var view room.PublicView
	assertGet(t, ts, "/room/"+strings.ToLower(code)+"?playerId=a", &view, http.StatusOK)
	assert.Equal(t, code, view.Code)
	assert.Equal(t, room.PhaseLobby, view.Phase)
	assert.Len(t, view.Players, 1)

	var errObj errorResponse
	assertGet(t, ts, "/room/00000?playerId=a", &errObj, http.StatusNotFound)
	assert.Equal(t, "room not found", errObj.Message)

	assertGet(t, ts, "/room/"+code, &errObj, http.StatusBadRequest)

	assertGet(t, ts, "/room/"+code+"?playerId=b", &errObj, http.StatusForbidden)
	assert.Equal(t, http.StatusForbidden, errObj.StatusCode)
}

func TestMux_postRoomJoin(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")

	var resp postRoomJoinResponse
	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: strings.ToLower(code), PlayerID: "b", PlayerName: "Bob"}, &resp, http.StatusOK)
	assert.True(t, resp.Success)
	assert.False(t, resp.Reconnected)
	require.NotNil(t, resp.Room)
	assert.Len(t, resp.Room.Players, 2)

	resp = postRoomJoinResponse{}
	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: code, PlayerID: "b", PlayerName: "Bobby"}, &resp, http.StatusOK)
	assert.True(t, resp.Reconnected)
	assert.Equal(t, "Bobby", resp.Room.Players[1].Name)

	var errObj errorResponse
	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: "00000", PlayerID: "b", PlayerName: "Bob"}, &errObj, http.StatusNotFound)
	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: code, PlayerName: "Bob"}, &errObj, http.StatusBadRequest)
}

func TestMux_Game(t *testing.T) {
	ts, registry := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")
	base := "/room/" + code

	var errObj errorResponse
	assertPost(t, ts, base+"/start", playerPayload{PlayerID: "a"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "need at least two players to start", errObj.Message)

	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: code, PlayerID: "b", PlayerName: "Bob"}, nil, http.StatusOK)

	assertPost(t, ts, base+"/draw", playerPayload{PlayerID: "a"}, &errObj, http.StatusConflict)

	assertPost(t, ts, base+"/start", playerPayload{PlayerID: "b"}, &errObj, http.StatusForbidden)
	assert.Equal(t, "only the host can start the game", errObj.Message)

	var view room.PublicView
	assertPost(t, ts, base+"/start", playerPayload{PlayerID: "a"}, &view, http.StatusOK)
	assert.Equal(t, room.PhasePlaying, view.Phase)
	assert.Len(t, view.MyCards, 7)
	assert.Equal(t, "Game started!", view.LastAction)
	require.NotNil(t, view.TopCard)

	assertPost(t, ts, "/room/join", postRoomJoinPayload{RoomID: code, PlayerID: "c", PlayerName: "Carol"}, &errObj, http.StatusConflict)

	assertPost(t, ts, base+"/draw", playerPayload{PlayerID: "b"}, &errObj, http.StatusForbidden)
	assert.Equal(t, "it's not your turn", errObj.Message)

	view = room.PublicView{}
	assertPost(t, ts, base+"/draw", playerPayload{PlayerID: "a"}, &view, http.StatusOK)
	assert.Len(t, view.MyCards, 8)
	assert.Equal(t, 1, view.CurrentIndex)
	assert.Equal(t, 8, view.Players[0].CardCount)

	assertPost(t, ts, base+"/play", playPayload{PlayerID: "b"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "missing required field: cardId", errObj.Message)

	assertPost(t, ts, base+"/play", playPayload{PlayerID: "b", CardID: "nope"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "card is not in your hand", errObj.Message)

	assertPost(t, ts, base+"/play", playPayload{PlayerID: "a", CardID: view.MyCards[0].ID}, &errObj, http.StatusForbidden)

	s, _ := registry.GetRoom(code)
	assert.Equal(t, 108, s.TotalCards())
}

func TestMux_postRoomCodeChat(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")
	path := "/room/" + code + "/chat"

	var view room.PublicView
	assertPost(t, ts, path, chatPayload{PlayerID: "a", Type: "emoji", Content: "fire"}, &view, http.StatusOK)
	require.Len(t, view.ChatEvents, 1)
	assert.Equal(t, "Alice", view.ChatEvents[0].PlayerName)
	assert.Equal(t, room.ChatEmoji, view.ChatEvents[0].Kind)

	view = room.PublicView{}
	assertPost(t, ts, path, chatPayload{PlayerID: "a", Type: "quickchat", Content: "Uno!"}, &view, http.StatusOK)
	assert.Len(t, view.ChatEvents, 2)

	var errObj errorResponse
	assertPost(t, ts, path, chatPayload{PlayerID: "a", Type: "emoji", Content: "Uno!"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "invalid chat content: unknown emoji", errObj.Message)

	assertPost(t, ts, path, chatPayload{PlayerID: "a", Type: "quickchat", Content: "gg"}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "invalid chat content: unknown message", errObj.Message)

	assertPost(t, ts, path, chatPayload{PlayerID: "a", Type: "shout", Content: "fire"}, &errObj, http.StatusBadRequest)

	assertPost(t, ts, path, chatPayload{PlayerID: "z", Type: "emoji", Content: "fire"}, &errObj, http.StatusForbidden)
	assert.Equal(t, "you are not part of this game", errObj.Message)
}

func TestMux_postRoomCodeAvatar(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")

	var view room.PublicView
	assertPost(t, ts, "/room/"+code+"/avatar", avatarPayload{PlayerID: "a", Avatar: "panda"}, &view, http.StatusOK)
	assert.Equal(t, "panda", view.Players[0].Avatar)

	var errObj errorResponse
	assertPost(t, ts, "/room/"+code+"/avatar", avatarPayload{PlayerID: "b", Avatar: "panda"}, &errObj, http.StatusForbidden)
}

func TestMux_postRoomReconnect(t *testing.T) {
	ts, registry := newTestServer()
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{}, &errObj, http.StatusBadRequest)

	var resp postRoomReconnectResponse
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "a"}, &resp, http.StatusOK)
	assert.False(t, resp.Reconnected)
	assert.Nil(t, resp.Room)
	assert.Empty(t, resp.Rooms)

	code := createRoom(t, ts, "a", "Alice")

	resp = postRoomReconnectResponse{}
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "a", PlayerName: "Ally"}, &resp, http.StatusOK)
	assert.True(t, resp.Reconnected)
	require.NotNil(t, resp.Room)
	assert.Equal(t, code, resp.Room.Code)
	assert.Equal(t, "Ally", resp.Room.Players[0].Name)

	// an unknown player can take a seat in the lobby
	resp = postRoomReconnectResponse{}
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "b", PlayerName: "Bob", RoomID: strings.ToLower(code)}, &resp, http.StatusOK)
	assert.True(t, resp.Reconnected)
	assert.Len(t, resp.Room.Players, 2)

	_, err := registry.StartGame(code, "a")
	require.NoError(t, err)

	// but not once the game is underway
	resp = postRoomReconnectResponse{}
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "c", PlayerName: "Carol", RoomID: code}, &resp, http.StatusOK)
	assert.False(t, resp.Reconnected)
	assert.Nil(t, resp.Room)

	resp = postRoomReconnectResponse{}
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "b"}, &resp, http.StatusOK)
	assert.True(t, resp.Reconnected)
	assert.Equal(t, room.PhasePlaying, resp.Room.Phase)
	assert.Len(t, resp.Room.MyCards, 7)
	assert.Equal(t, []room.RoomSummary{{Code: code, Phase: room.PhasePlaying, PlayerCount: 2}}, resp.Rooms)
}

func TestMux_postRoomReconnect_InvalidName(t *testing.T) {
	ts, registry := newTestServer()
	defer ts.Close()

	code := createRoom(t, ts, "a", "Alice")

	var errObj errorResponse
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "m", PlayerName: "<b>Mallory</b>", RoomID: code}, &errObj, http.StatusBadRequest)
	assert.Equal(t, errInvalidName.Error(), errObj.Message)

	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "a", PlayerName: "<script>"}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "a", PlayerName: strings.Repeat("a", 41)}, &errObj, http.StatusBadRequest)

	s, ok := registry.GetRoom(code)
	require.True(t, ok)
	require.Len(t, s.Players, 1)
	assert.Equal(t, "Alice", s.Players[0].Name)
	assert.Equal(t, 1, s.Version)

	// a blank name is allowed for a seated player
	var resp postRoomReconnectResponse
	assertPost(t, ts, "/room/reconnect", postRoomReconnectPayload{PlayerID: "a", PlayerName: "  ", RoomID: code}, &resp, http.StatusOK)
	assert.True(t, resp.Reconnected)
	assert.Equal(t, "Alice", resp.Room.Players[0].Name)
}

package room

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ReconnectPlayer brings a returning player back into a room
// A seated player is renamed if a non-empty name is given. Someone who isn't seated
// can only get in while the room is in the lobby, and needs a name to do so.
func (r *Registry) ReconnectPlayer(code, playerID, name string) (*Snapshot, error) {
	name = strings.TrimSpace(name)

	return r.withRoom(code, func(room *Room) error {
		if player := room.getPlayer(playerID); player != nil {
			if name != "" && name != player.Name {
				player.Name = name
				room.bump()
			}

			return nil
		}

		if room.phase != PhaseLobby {
			return ErrNotAMember
		}

		if name == "" {
			return ErrNameRequired
		}

		if len(room.players) >= MaxPlayers {
			return ErrRoomFull
		}

		room.addPlayer(playerID, name, "")
		r.logger.WithFields(logrus.Fields{
			"room":     room.Code,
			"playerID": playerID,
		}).Debug("player joined on reconnect")

		return nil
	})
}

// ResolveSession finds the room a returning player should go back to when they
// don't know its code
// A game in progress is preferred over a lobby, finished rooms are never picked.
// The returned snapshot is nil if there is nothing to go back to; rooms lists
// every room the player is seated in either way.
func (r *Registry) ResolveSession(playerID, name string) (*Snapshot, []RoomSummary, error) {
	rooms := r.FindPlayerRooms(playerID)

	var target *RoomSummary
	for _, phase := range []Phase{PhasePlaying, PhaseLobby} {
		for i := range rooms {
			if rooms[i].Phase == phase {
				target = &rooms[i]
				break
			}
		}

		if target != nil {
			break
		}
	}

	if target == nil {
		return nil, rooms, nil
	}

	snapshot, err := r.ReconnectPlayer(target.Code, playerID, name)
	if err != nil {
		return nil, rooms, err
	}

	return snapshot, rooms, nil
}

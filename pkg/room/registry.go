package room

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"unoroom-server/internal/rng"
	"unoroom-server/pkg/deck"
	"unoroom-server/pkg/uno"
)

// codeAlphabet leaves out 0, O, 1 and I so codes can be read aloud
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 5

// Options are the tunables of a registry
type Options struct {
	// ChatLimit is the number of chat events a room retains
	ChatLimit int
	// ChatVisibleFor is how long a chat event stays in the public view
	ChatVisibleFor time.Duration
}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		ChatLimit:      20,
		ChatVisibleFor: 10 * time.Second,
	}
}

// Registry holds every live room, keyed by code
// The map is guarded by lock, each room is guarded by its own lock. Operations
// on different rooms never contend.
type Registry struct {
	lock  sync.RWMutex
	rooms map[string]*Room

	opts   Options
	rng    rng.Generator
	now    func() time.Time
	logger logrus.FieldLogger
}

// NewRegistry returns an empty registry
func NewRegistry(logger logrus.FieldLogger, opts Options) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	defaults := DefaultOptions()
	if opts.ChatLimit <= 0 {
		opts.ChatLimit = defaults.ChatLimit
	}

	if opts.ChatVisibleFor <= 0 {
		opts.ChatVisibleFor = defaults.ChatVisibleFor
	}

	return &Registry{
		rooms:  make(map[string]*Room),
		opts:   opts,
		rng:    rng.Crypto{},
		now:    time.Now,
		logger: logger,
	}
}

// NormalizeCode trims and upper-cases a room code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// newCode returns an unused room code
// NOTE: must be called while holding the write lock
func (r *Registry) newCode() string {
	var sb strings.Builder
	for {
		sb.Reset()
		for i := 0; i < codeLength; i++ {
			sb.WriteByte(codeAlphabet[r.rng.Intn(len(codeAlphabet))])
		}

		if _, found := r.rooms[sb.String()]; !found {
			return sb.String()
		}
	}
}

func (r *Registry) getRoom(code string) (*Room, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	room, found := r.rooms[NormalizeCode(code)]
	if !found {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// withRoom runs fn while holding the room's lock
func (r *Registry) withRoom(code string, fn func(room *Room) error) (*Snapshot, error) {
	room, err := r.getRoom(code)
	if err != nil {
		return nil, err
	}

	room.lock.Lock()
	defer room.lock.Unlock()

	if err := fn(room); err != nil {
		return nil, err
	}

	return room.snapshot(), nil
}

// CreateRoom creates a room in the lobby with the host as its only player
// An empty or unknown avatar falls back to the first avatar.
func (r *Registry) CreateRoom(hostID, hostName, hostAvatar string) *Snapshot {
	host := uno.NewPlayer(hostID, hostName, avatarOrDefault(hostAvatar, Avatars[0]))

	r.lock.Lock()
	defer r.lock.Unlock()

	room := newRoom(r.newCode(), host, r.now(), r.opts.ChatLimit)
	room.lastAction = hostName + " created the room."
	r.rooms[room.Code] = room

	r.logger.WithFields(logrus.Fields{
		"room":   room.Code,
		"hostID": hostID,
	}).Info("room created")

	return room.snapshot()
}

// JoinRoom seats a player in a room that is still in the lobby
// If the player is already seated, their name is updated, and their avatar too if one is given.
func (r *Registry) JoinRoom(code, playerID, name, avatar string) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		if room.phase != PhaseLobby {
			return ErrWrongPhase
		}

		if existing := room.getPlayer(playerID); existing != nil {
			existing.Name = name
			if avatar != "" {
				existing.Avatar = avatarOrDefault(avatar, existing.Avatar)
			}

			room.bump()
			return nil
		}

		if len(room.players) >= MaxPlayers {
			return ErrRoomFull
		}

		room.addPlayer(playerID, name, avatar)
		r.logger.WithFields(logrus.Fields{
			"room":     room.Code,
			"playerID": playerID,
		}).Debug("player joined")

		return nil
	})
}

// IsPlayerInRoom returns true if the player is seated in the room
func (r *Registry) IsPlayerInRoom(code, playerID string) bool {
	room, err := r.getRoom(code)
	if err != nil {
		return false
	}

	room.lock.Lock()
	defer room.lock.Unlock()

	return room.getPlayer(playerID) != nil
}

// GetRoom returns a snapshot of the room
func (r *Registry) GetRoom(code string) (*Snapshot, bool) {
	room, err := r.getRoom(code)
	if err != nil {
		return nil, false
	}

	room.lock.Lock()
	defer room.lock.Unlock()

	return room.snapshot(), true
}

// FindPlayerRooms returns a summary of every room the player is seated in, oldest room first
func (r *Registry) FindPlayerRooms(playerID string) []RoomSummary {
	r.lock.RLock()
	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.lock.RUnlock()

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Created.Equal(rooms[j].Created) {
			return rooms[i].Code < rooms[j].Code
		}

		return rooms[i].Created.Before(rooms[j].Created)
	})

	summaries := make([]RoomSummary, 0)
	for _, room := range rooms {
		room.lock.Lock()
		if room.getPlayer(playerID) != nil {
			summaries = append(summaries, room.summary())
		}
		room.lock.Unlock()
	}

	return summaries
}

// StartGame deals the cards and moves the room from the lobby into play
// Only the host can start the game.
func (r *Registry) StartGame(code, callerID string) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		if room.HostID != callerID {
			return ErrNotHost
		}

		if len(room.players) < uno.MinPlayers {
			return uno.ErrNotEnoughPlayers
		}

		if room.phase != PhaseLobby {
			return ErrWrongPhase
		}

		log := r.logger.WithField("room", room.Code)
		game, err := uno.NewGame(log, room.players, r.rng)
		if err != nil {
			return err
		}

		room.game = game
		room.phase = PhasePlaying
		room.syncGame()

		log.WithField("players", len(room.players)).Info("game started")
		return nil
	})
}

// PlayCard plays a card from the caller's hand
// chosenColor is required when the card is wild, and ignored otherwise.
func (r *Registry) PlayCard(code, callerID, cardID string, chosenColor deck.Color) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		if room.phase != PhasePlaying {
			return ErrWrongPhase
		}

		if err := room.game.PlayCard(callerID, cardID, chosenColor); err != nil {
			return err
		}

		room.syncGame()
		if room.phase == PhaseFinished {
			r.logger.WithFields(logrus.Fields{
				"room":   room.Code,
				"winner": callerID,
			}).Info("game over")
		}

		return nil
	})
}

// DrawCard draws a card for the caller and passes the turn
func (r *Registry) DrawCard(code, callerID string) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		if room.phase != PhasePlaying {
			return ErrWrongPhase
		}

		card, err := room.game.DrawCard(callerID)
		if err != nil {
			return err
		}

		if card == nil {
			r.logger.WithField("room", room.Code).Warn("deck exhausted, turn passed without a card")
		}

		room.syncGame()
		return nil
	})
}

// SendChatEvent records an emoji reaction or quick chat phrase from a seated player
func (r *Registry) SendChatEvent(code, playerID string, kind ChatKind, content string) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		player := room.getPlayer(playerID)
		if player == nil {
			return ErrNotAMember
		}

		if !IsValidChat(kind, content) {
			return ErrInvalidContent
		}

		room.chat.add(&ChatEvent{
			ID:         newEventID(),
			PlayerID:   playerID,
			PlayerName: player.Name,
			Kind:       kind,
			Content:    content,
			Timestamp:  r.now().UnixMilli(),
		})

		room.bump()
		return nil
	})
}

// UpdateAvatar changes a seated player's avatar
// Unknown avatars fall back to the first avatar.
func (r *Registry) UpdateAvatar(code, playerID, avatar string) (*Snapshot, error) {
	return r.withRoom(code, func(room *Room) error {
		player := room.getPlayer(playerID)
		if player == nil {
			return ErrNotAMember
		}

		player.Avatar = avatarOrDefault(avatar, Avatars[0])
		room.bump()
		return nil
	})
}

// Watch returns a channel that is closed the next time the room changes, along with
// the version the channel was issued at
func (r *Registry) Watch(code string) (<-chan struct{}, int, error) {
	room, err := r.getRoom(code)
	if err != nil {
		return nil, 0, err
	}

	room.lock.Lock()
	defer room.lock.Unlock()

	return room.changed, room.version, nil
}

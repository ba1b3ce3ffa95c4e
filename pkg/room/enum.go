package room

// Avatars are the avatar identifiers a player can pick from
var Avatars = []string{
	"fox", "cat", "dog", "panda", "koala",
	"lion", "owl", "frog", "penguin", "rabbit",
	"bear", "tiger",
}

// EmojiReactions are the emoji tokens that can be sent as a reaction
var EmojiReactions = []string{
	"thumbsup", "fire", "laugh", "cry",
	"angry", "shock", "heart", "clap",
}

// QuickChatMessages are the canned phrases players can send
var QuickChatMessages = []string{
	"Nice move!",
	"Hurry up!",
	"Oops!",
	"Well played!",
	"No way!",
	"Good game!",
	"Uno!",
	"Oh no...",
}

// ChatKind is the type of chat event
type ChatKind string

// chat kinds
const (
	ChatEmoji     ChatKind = "emoji"
	ChatQuickChat ChatKind = "quickchat"
)

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}

	return false
}

// IsAvatar returns true if s is a known avatar
func IsAvatar(s string) bool {
	return contains(Avatars, s)
}

// IsEmoji returns true if s is a known emoji reaction
func IsEmoji(s string) bool {
	return contains(EmojiReactions, s)
}

// IsQuickChat returns true if s is a known quick chat phrase
func IsQuickChat(s string) bool {
	return contains(QuickChatMessages, s)
}

// IsValidChat checks content against the set that belongs to kind
func IsValidChat(kind ChatKind, content string) bool {
	switch kind {
	case ChatEmoji:
		return IsEmoji(content)
	case ChatQuickChat:
		return IsQuickChat(content)
	}

	return false
}

// seatAvatar returns the avatar for seat i when the player didn't pick one
func seatAvatar(i int) string {
	return Avatars[i%len(Avatars)]
}

// avatarOrDefault returns avatar when it's known, otherwise fallback
func avatarOrDefault(avatar, fallback string) string {
	if IsAvatar(avatar) {
		return avatar
	}

	return fallback
}

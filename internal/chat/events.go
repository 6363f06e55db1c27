package chat

import "encoding/json"

// Wire event names. These match what the frontend listens for, so renaming
// any of them is a breaking change.
const (
	EvConnected      = "connected"
	EvRoomsUpdate    = "rooms_update"
	EvHistory        = "message_history"
	EvUserJoined     = "user_joined"
	EvUserLeft       = "user_left"
	EvUserListUpdate = "user_list_update"
	EvMessage        = "message_received"
	EvTyping         = "typing"
	EvReadUpdate     = "message_read_update"
)

// Event is the outbound envelope written to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// encode serializes the envelope once, inside the engine's critical section,
// so sinks receive an immutable snapshot of the payload.
func (e Event) encode() []byte {
	b, _ := json.Marshal(e)
	return b
}

// Message is a single chat entry. Immutable after creation except for ReadBy,
// which only grows and only via MessageStore.MarkRead.
type Message struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Body      string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	IsSticker bool     `json:"isSticker"`
	ReadBy    []string `json:"readBy"`
}

type ConnectedData struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

type RoomsData struct {
	Rooms []string `json:"rooms"`
}

type HistoryData struct {
	Messages []Message `json:"messages"`
}

// NoticeData carries human-readable join/leave announcements.
type NoticeData struct {
	Message string `json:"message"`
}

type UserListData struct {
	Users []string `json:"users"`
}

type TypingData struct {
	Username string `json:"username"`
	Typing   bool   `json:"typing"`
}

type ReadUpdateData struct {
	ID     string   `json:"id"`
	ReadBy []string `json:"readBy"`
}

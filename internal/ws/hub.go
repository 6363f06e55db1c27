package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ValerySM/realtime-chat/internal/chat"
)

// Hub accepts websocket connections and translates inbound frames into
// engine calls. All chat state lives in the engine; the hub is transport.
type Hub struct {
	log    *slog.Logger
	engine *chat.Engine
}

func NewHub(logger *slog.Logger, engine *chat.Engine) *Hub {
	return &Hub{log: logger, engine: engine}
}

// inboundFrame is the client → server envelope: {"event": "...", "data": {...}}
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinData struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

type sendData struct {
	Message string `json:"message"`
}

type stickerData struct {
	Emoji string `json:"emoji"`
}

type typingData struct {
	Typing bool `json:"typing"`
}

type markReadData struct {
	ID string `json:"id"`
}

// ServeWS handles a new /ws connection for its whole lifetime.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := Accept(w, r)
	if err != nil {
		h.log.Error("ws.accept", "err", err)
		return
	}

	c := NewConn(raw)
	connID := uuid.NewString()
	h.engine.Connect(connID, r.URL.Query().Get("token"), c)

	// Outbound writer
	go c.WriteLoop(ctx)

	// Inbound reader; disconnect exactly once when the read side ends
	for {
		payload, ok := c.Read(ctx)
		if !ok {
			break
		}
		h.dispatch(connID, payload)
	}

	h.engine.Disconnect(connID)
	_ = c.Close()
}

// dispatch routes one inbound frame to the engine. Malformed frames and
// unknown events are dropped; a bad frame from one client must never affect
// the rest of the room.
func (h *Hub) dispatch(connID string, payload []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		h.log.Debug("ws.frame.malformed", "conn", connID, "err", err)
		return
	}

	switch frame.Event {
	case "join_room", "switch_room":
		var d joinData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.Join(connID, d.Room, d.Username)
	case "create_room":
		var d joinData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.CreateRoom(d.Room)
	case "get_rooms":
		h.engine.PushRooms(connID)
	case "send_message":
		var d sendData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.Send(connID, d.Message)
	case "send_sticker":
		var d stickerData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.Sticker(connID, d.Emoji)
	case "typing":
		var d typingData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.Typing(connID, d.Typing)
	case "mark_read":
		var d markReadData
		_ = json.Unmarshal(frame.Data, &d)
		h.engine.MarkRead(connID, d.ID)
	default:
		h.log.Debug("ws.frame.unknown", "conn", connID, "event", frame.Event)
	}
}

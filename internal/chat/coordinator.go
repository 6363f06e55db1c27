package chat

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ValerySM/realtime-chat/pkg/metrics"
)

// Options tunes the engine. A zero value is usable.
type Options struct {
	// HistoryLimit caps messages retained per room. 0 keeps everything.
	HistoryLimit int
}

// defaultRooms are seeded at construction so the lobby is never empty.
var defaultRooms = []string{"general", "random", "tech-talk"}

// Engine is the session coordinator: it owns the room registry, presence
// tracker, message store, and broadcast router, and drives them from
// connection events. One mutex guards all shared state; every operation
// runs its mutation and the matching fan-out inside the same critical
// section, which is what gives per-room events their ordering guarantee.
type Engine struct {
	log      *slog.Logger
	verifier TokenVerifier

	mu       sync.Mutex
	clock    clock
	registry *RoomRegistry
	presence *PresenceTracker
	store    *MessageStore
	router   *Router
}

// NewEngine builds a coordinator with the default rooms seeded. verifier may
// be nil, in which case every connection is anonymous.
func NewEngine(log *slog.Logger, verifier TokenVerifier, opts Options) *Engine {
	e := &Engine{
		log:      log,
		verifier: verifier,
		clock:    newClock(),
		registry: NewRoomRegistry(),
		presence: NewPresenceTracker(),
		store:    NewMessageStore(opts.HistoryLimit),
		router:   NewRouter(),
	}
	for _, name := range defaultRooms {
		room, _ := e.registry.Ensure(name)
		e.store.Create(room)
	}
	return e
}

// Connect registers a new connection, resolving its identity from the auth
// token if one was supplied. A missing or invalid token means an anonymous
// connection, never an error.
func (e *Engine) Connect(connID, token string, sink Sink) {
	identity := identityFromToken(e.verifier, token)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.presence.Bind(connID, identity)
	e.router.Register(connID, sink)
	e.router.ToConn(connID, Event{EvConnected, ConnectedData{
		Message: "Connected",
		Time:    e.clock.timestamp(),
	}})
	metrics.ConnectionsOpen.Inc()
	e.log.Debug("chat.connect", "conn", connID, "identity", identity)
}

// Join moves a connection into a room, creating the room if needed and
// leaving the previous one. The joining connection alone receives the room's
// history snapshot; the room receives the join notice and refreshed member
// list. Switch is the same operation.
func (e *Engine) Join(connID, rawRoom, suppliedName string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	identity, oldRoom, ok := e.presence.Get(connID)
	if !ok {
		return
	}
	room := e.ensureLocked(rawRoom)
	if identity == "" {
		identity = resolveIdentity(connID, suppliedName)
		e.presence.Bind(connID, identity)
	}

	if oldRoom != "" && oldRoom != room {
		e.router.Unsubscribe(connID, oldRoom)
		e.presence.SetRoom(connID, room)
		e.router.ToRoom(oldRoom, Event{EvUserLeft, NoticeData{
			Message: fmt.Sprintf("%s left %s", identity, oldRoom),
		}})
		e.router.ToRoom(oldRoom, Event{EvUserListUpdate, UserListData{
			Users: e.presence.MembersOf(oldRoom),
		}})
	} else {
		e.presence.SetRoom(connID, room)
	}

	e.router.Subscribe(connID, room)
	e.router.ToConn(connID, Event{EvHistory, HistoryData{
		Messages: e.store.History(room),
	}})
	e.router.ToRoom(room, Event{EvUserJoined, NoticeData{
		Message: fmt.Sprintf("%s joined %s", identity, room),
	}})
	e.router.ToRoom(room, Event{EvUserListUpdate, UserListData{
		Users: e.presence.MembersOf(room),
	}})
	e.log.Debug("chat.join", "conn", connID, "identity", identity, "room", room)
}

// Send appends a text message to the connection's current room and fans it
// out to the whole room, sender included. Empty text is dropped.
func (e *Engine) Send(connID, text string) {
	e.append(connID, text, false)
}

// Sticker appends a sticker message. Same rules as Send.
func (e *Engine) Sticker(connID, emoji string) {
	e.append(connID, emoji, true)
}

func (e *Engine) append(connID, body string, sticker bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	identity, room, ok := e.presence.Get(connID)
	if !ok || room == "" {
		return
	}
	m := &Message{
		ID:        e.clock.newID(),
		Username:  identity,
		Body:      body,
		Timestamp: e.clock.timestamp(),
		IsSticker: sticker,
		ReadBy:    []string{},
	}
	e.store.Append(room, m)
	e.router.ToRoom(room, Event{EvMessage, m})

	kind := "text"
	if sticker {
		kind = "sticker"
	}
	metrics.MessagesTotal.WithLabelValues(kind).Inc()
}

// Typing relays a typing indicator to everyone else in the sender's room.
// It carries no state.
func (e *Engine) Typing(connID string, typing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	identity, room, ok := e.presence.Get(connID)
	if !ok || room == "" {
		return
	}
	e.router.ToRoomExcept(room, Event{EvTyping, TypingData{
		Username: identity,
		Typing:   typing,
	}}, connID)
}

// MarkRead records a read receipt for a message in the connection's current
// room and tells the room. An unknown message ID is silently ignored.
func (e *Engine) MarkRead(connID, messageID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	identity, room, ok := e.presence.Get(connID)
	if !ok || room == "" || identity == "" || messageID == "" {
		return
	}
	upd, found := e.store.MarkRead(room, messageID, identity)
	if !found {
		return
	}
	e.router.ToRoom(room, Event{EvReadUpdate, upd})
}

// Disconnect tears down a connection's presence and subscriptions. If it was
// in a room, the room gets a leave notice and a refreshed member list.
// Safe to call for unknown connections.
func (e *Engine) Disconnect(connID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	identity, room, ok := e.presence.Unbind(connID)
	e.router.Unregister(connID)
	if !ok {
		return
	}
	if room != "" && identity != "" {
		e.router.ToRoom(room, Event{EvUserLeft, NoticeData{
			Message: fmt.Sprintf("%s left %s", identity, room),
		}})
		e.router.ToRoom(room, Event{EvUserListUpdate, UserListData{
			Users: e.presence.MembersOf(room),
		}})
	}
	metrics.ConnectionsOpen.Dec()
	e.log.Debug("chat.disconnect", "conn", connID, "identity", identity, "room", room)
}

// CreateRoom ensures a room exists and pushes the room list to every
// connection, whether or not the name was new. Idempotent.
func (e *Engine) CreateRoom(rawRoom string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureLocked(rawRoom)
	e.router.ToAll(Event{EvRoomsUpdate, RoomsData{Rooms: e.registry.Names()}})
}

// PushRooms sends the current room list to one connection.
func (e *Engine) PushRooms(connID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.router.ToConn(connID, Event{EvRoomsUpdate, RoomsData{Rooms: e.registry.Names()}})
}

// Rooms returns the sorted room names for the HTTP listing endpoint.
func (e *Engine) Rooms() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Names()
}

// ensureLocked registers a room name and, when it is new, creates its history
// and announces the grown room list to everyone. Caller holds e.mu.
func (e *Engine) ensureLocked(rawRoom string) string {
	room, created := e.registry.Ensure(rawRoom)
	if created {
		e.store.Create(room)
		e.router.ToAll(Event{EvRoomsUpdate, RoomsData{Rooms: e.registry.Names()}})
		metrics.RoomsCreated.Inc()
		e.log.Info("chat.room.created", "room", room)
	}
	return room
}

package chat

// Sink receives pre-encoded events for one connection. Send must not block;
// it reports false if the event was dropped (e.g. a full client buffer).
type Sink interface {
	Send(b []byte) bool
}

// Router is the single fan-out surface. It keeps a sink per connection plus
// a room → subscriber index maintained in step with presence transitions, so
// a room broadcast never scans every connection.
// Not safe for concurrent use on its own — the engine serializes access.
type Router struct {
	sinks map[string]Sink
	rooms map[string]map[string]struct{}
}

func NewRouter() *Router {
	return &Router{
		sinks: map[string]Sink{},
		rooms: map[string]map[string]struct{}{},
	}
}

// Register attaches a sink for a new connection.
func (r *Router) Register(connID string, s Sink) {
	r.sinks[connID] = s
}

// Unregister drops a connection's sink and any room subscription it held.
func (r *Router) Unregister(connID string) {
	delete(r.sinks, connID)
	for _, subs := range r.rooms {
		delete(subs, connID)
	}
}

// Subscribe adds a connection to a room's delivery set.
func (r *Router) Subscribe(connID, room string) {
	subs := r.rooms[room]
	if subs == nil {
		subs = map[string]struct{}{}
		r.rooms[room] = subs
	}
	subs[connID] = struct{}{}
}

// Unsubscribe removes a connection from a room's delivery set.
func (r *Router) Unsubscribe(connID, room string) {
	delete(r.rooms[room], connID)
}

// ToConn delivers an event to a single connection.
func (r *Router) ToConn(connID string, e Event) {
	if s, ok := r.sinks[connID]; ok {
		s.Send(e.encode())
	}
}

// ToRoom delivers an event to every connection subscribed to room.
func (r *Router) ToRoom(room string, e Event) {
	r.toRoom(room, e, "")
}

// ToRoomExcept delivers to the room, skipping the sender's own connection.
func (r *Router) ToRoomExcept(room string, e Event, exceptConnID string) {
	r.toRoom(room, e, exceptConnID)
}

func (r *Router) toRoom(room string, e Event, except string) {
	b := e.encode()
	for connID := range r.rooms[room] {
		if connID == except {
			continue
		}
		if s, ok := r.sinks[connID]; ok {
			s.Send(b)
		}
	}
}

// ToAll delivers an event to every registered connection.
func (r *Router) ToAll(e Event) {
	b := e.encode()
	for _, s := range r.sinks {
		s.Send(b)
	}
}

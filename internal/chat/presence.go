package chat

import "sort"

// binding is what the tracker knows about one live connection. Identity is
// empty until the connection authenticates or first joins a room; room is
// empty until the first join.
type binding struct {
	identity string
	room     string
}

// PresenceTracker maps connection IDs to their identity and current room.
// Not safe for concurrent use on its own — the engine serializes access.
type PresenceTracker struct {
	conns map[string]binding
}

func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{conns: map[string]binding{}}
}

// Bind records the identity for a connection, preserving its room.
func (p *PresenceTracker) Bind(connID, identity string) {
	b := p.conns[connID]
	b.identity = identity
	p.conns[connID] = b
}

// SetRoom moves a connection to a room, preserving its identity.
func (p *PresenceTracker) SetRoom(connID, room string) {
	b := p.conns[connID]
	b.room = room
	p.conns[connID] = b
}

// Get returns the current binding for a connection.
func (p *PresenceTracker) Get(connID string) (identity, room string, ok bool) {
	b, ok := p.conns[connID]
	return b.identity, b.room, ok
}

// Unbind removes a connection and returns what it was bound to. Safe to call
// for unknown connections.
func (p *PresenceTracker) Unbind(connID string) (identity, room string, ok bool) {
	b, ok := p.conns[connID]
	if ok {
		delete(p.conns, connID)
	}
	return b.identity, b.room, ok
}

// MembersOf returns the distinct identities currently bound to room, sorted.
func (p *PresenceTracker) MembersOf(room string) []string {
	seen := map[string]struct{}{}
	for _, b := range p.conns {
		if b.room == room && b.identity != "" {
			seen[b.identity] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

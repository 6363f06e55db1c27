package chat

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultRoom is where invalid or empty room names land.
const DefaultRoom = "general"

// RoomRegistry owns the set of known room names. Names only grow; a room is
// never deleted. Not safe for concurrent use on its own — the engine
// serializes access.
type RoomRegistry struct {
	rooms map[string]struct{}
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: map[string]struct{}{}}
}

// Normalize canonicalizes a raw room name: lowercase, alphanumerics and
// hyphens only. Anything left empty falls back to DefaultRoom.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return DefaultRoom
	}
	return b.String()
}

// Ensure registers the canonical form of raw, reporting whether it was new.
// Calling with an already-known name is a no-op beyond returning it.
func (r *RoomRegistry) Ensure(raw string) (name string, created bool) {
	name = Normalize(raw)
	if _, ok := r.rooms[name]; ok {
		return name, false
	}
	r.rooms[name] = struct{}{}
	return name, true
}

// Names returns the sorted room name set.
func (r *RoomRegistry) Names() []string {
	out := make([]string, 0, len(r.rooms))
	for name := range r.rooms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

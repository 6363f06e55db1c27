package chat

// MessageStore holds the per-room ordered message logs. Entries are appended
// in send order and never reordered. When a retention limit is set, the
// oldest entries are trimmed as new ones arrive.
// Not safe for concurrent use on its own — the engine serializes access.
type MessageStore struct {
	limit int // max messages kept per room, 0 = unbounded
	logs  map[string][]*Message
}

func NewMessageStore(limit int) *MessageStore {
	return &MessageStore{limit: limit, logs: map[string][]*Message{}}
}

// Create initializes an empty history for a room. Idempotent.
func (s *MessageStore) Create(room string) {
	if _, ok := s.logs[room]; !ok {
		s.logs[room] = []*Message{}
	}
}

// Append adds a message to the room's log, trimming the oldest entries past
// the retention limit.
func (s *MessageStore) Append(room string, m *Message) {
	log := append(s.logs[room], m)
	if s.limit > 0 && len(log) > s.limit {
		log = log[len(log)-s.limit:]
	}
	s.logs[room] = log
}

// History returns a snapshot of the room's log, safe to serialize after the
// engine's lock is released.
func (s *MessageStore) History(room string) []Message {
	log := s.logs[room]
	out := make([]Message, 0, len(log))
	for _, m := range log {
		c := *m
		c.ReadBy = append([]string{}, m.ReadBy...)
		out = append(out, c)
	}
	return out
}

// MarkRead records that identity has read the message with the given ID.
// Duplicate marks are absorbed; an unknown ID reports ok=false.
func (s *MessageStore) MarkRead(room, id, identity string) (ReadUpdateData, bool) {
	for _, m := range s.logs[room] {
		if m.ID != id {
			continue
		}
		seen := false
		for _, r := range m.ReadBy {
			if r == identity {
				seen = true
				break
			}
		}
		if !seen {
			m.ReadBy = append(m.ReadBy, identity)
		}
		return ReadUpdateData{ID: m.ID, ReadBy: append([]string{}, m.ReadBy...)}, true
	}
	return ReadUpdateData{}, false
}

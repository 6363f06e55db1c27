package chat

import (
	"reflect"
	"testing"
)

func msg(id, body string) *Message {
	return &Message{ID: id, Username: "alice", Body: body, ReadBy: []string{}}
}

func TestStoreAppendOrder(t *testing.T) {
	s := NewMessageStore(0)
	s.Create("general")
	s.Append("general", msg("1", "first"))
	s.Append("general", msg("2", "second"))
	s.Append("general", msg("3", "third"))

	h := s.History("general")
	if len(h) != 3 {
		t.Fatalf("len = %d, want 3", len(h))
	}
	for i, want := range []string{"first", "second", "third"} {
		if h[i].Body != want {
			t.Errorf("history[%d] = %q, want %q", i, h[i].Body, want)
		}
	}
}

func TestStoreHistorySnapshot(t *testing.T) {
	s := NewMessageStore(0)
	s.Create("general")
	s.Append("general", msg("1", "hi"))

	snap := s.History("general")
	s.MarkRead("general", "1", "bob")

	if len(snap[0].ReadBy) != 0 {
		t.Errorf("snapshot mutated by later MarkRead: %v", snap[0].ReadBy)
	}
	if got := s.History("general")[0].ReadBy; !reflect.DeepEqual(got, []string{"bob"}) {
		t.Errorf("readBy = %v, want [bob]", got)
	}
}

func TestStoreMarkReadIdempotent(t *testing.T) {
	s := NewMessageStore(0)
	s.Create("general")
	s.Append("general", msg("1", "hi"))

	upd, ok := s.MarkRead("general", "1", "bob")
	if !ok || !reflect.DeepEqual(upd.ReadBy, []string{"bob"}) {
		t.Fatalf("first mark = (%v, %v)", upd, ok)
	}

	upd, ok = s.MarkRead("general", "1", "bob")
	if !ok || !reflect.DeepEqual(upd.ReadBy, []string{"bob"}) {
		t.Fatalf("duplicate mark changed readBy: %v", upd.ReadBy)
	}
}

func TestStoreMarkReadUnknownID(t *testing.T) {
	s := NewMessageStore(0)
	s.Create("general")
	if _, ok := s.MarkRead("general", "nope", "bob"); ok {
		t.Fatal("unknown id reported found")
	}
}

func TestStoreRetentionLimit(t *testing.T) {
	s := NewMessageStore(3)
	s.Create("general")
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		s.Append("general", msg(id, "m"+id))
	}

	h := s.History("general")
	if len(h) != 3 {
		t.Fatalf("len = %d, want 3", len(h))
	}
	for i, want := range []string{"3", "4", "5"} {
		if h[i].ID != want {
			t.Errorf("history[%d].ID = %q, want %q", i, h[i].ID, want)
		}
	}
}

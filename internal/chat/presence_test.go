package chat

import (
	"reflect"
	"testing"
)

func TestPresenceBindAndRoom(t *testing.T) {
	p := NewPresenceTracker()

	p.Bind("c1", "alice")
	identity, room, ok := p.Get("c1")
	if !ok || identity != "alice" || room != "" {
		t.Fatalf("after Bind: (%q, %q, %v)", identity, room, ok)
	}

	p.SetRoom("c1", "general")
	identity, room, ok = p.Get("c1")
	if !ok || identity != "alice" || room != "general" {
		t.Fatalf("after SetRoom: (%q, %q, %v)", identity, room, ok)
	}

	// SetRoom overwrites; a connection is in at most one room
	p.SetRoom("c1", "random")
	if _, room, _ := p.Get("c1"); room != "random" {
		t.Fatalf("room = %q, want random", room)
	}
	if got := p.MembersOf("general"); len(got) != 0 {
		t.Fatalf("old room still lists %v", got)
	}
}

func TestPresenceUnbind(t *testing.T) {
	p := NewPresenceTracker()
	p.Bind("c1", "alice")
	p.SetRoom("c1", "general")

	identity, room, ok := p.Unbind("c1")
	if !ok || identity != "alice" || room != "general" {
		t.Fatalf("Unbind = (%q, %q, %v)", identity, room, ok)
	}

	// Unknown connections are a safe no-op
	if _, _, ok := p.Unbind("c1"); ok {
		t.Fatal("second Unbind reported ok")
	}
}

func TestPresenceMembersDistinctSorted(t *testing.T) {
	p := NewPresenceTracker()
	// Same identity on two connections (two tabs) lists once
	for conn, identity := range map[string]string{
		"c1": "bob", "c2": "alice", "c3": "alice",
	} {
		p.Bind(conn, identity)
		p.SetRoom(conn, "general")
	}
	// Identity-less connection never shows up
	p.Bind("c4", "")
	p.SetRoom("c4", "general")

	want := []string{"alice", "bob"}
	if got := p.MembersOf("general"); !reflect.DeepEqual(got, want) {
		t.Errorf("MembersOf = %v, want %v", got, want)
	}
}

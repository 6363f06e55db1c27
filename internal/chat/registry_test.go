package chat

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "spaces and punctuation stripped", raw: "Tech Talk!", want: "techtalk"},
		{name: "hyphen kept", raw: "tech-talk", want: "tech-talk"},
		{name: "case folded", raw: "TECH-TALK", want: "tech-talk"},
		{name: "empty falls back", raw: "", want: DefaultRoom},
		{name: "fully invalid falls back", raw: "!!! ???", want: DefaultRoom},
		{name: "digits kept", raw: "Room 42", want: "room42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRoomRegistryEnsure(t *testing.T) {
	r := NewRoomRegistry()

	name, created := r.Ensure("Tech Talk!")
	if name != "techtalk" || !created {
		t.Fatalf("first ensure = (%q, %v), want (techtalk, true)", name, created)
	}

	// Idempotent on the canonical name
	name, created = r.Ensure("TECHTALK")
	if name != "techtalk" || created {
		t.Fatalf("second ensure = (%q, %v), want (techtalk, false)", name, created)
	}
}

func TestRoomRegistryNamesSorted(t *testing.T) {
	r := NewRoomRegistry()
	for _, raw := range []string{"zulu", "alpha", "mike"} {
		r.Ensure(raw)
	}
	want := []string{"alpha", "mike", "zulu"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

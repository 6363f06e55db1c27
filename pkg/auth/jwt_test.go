package auth

import (
	"context"
	"testing"
	"time"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	j := New("test-secret")

	tok, err := j.Sign("alice", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sub, err := j.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "alice" {
		t.Errorf("sub = %q, want alice", sub)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	j := New("test-secret")

	if _, err := j.Verify("garbage"); err == nil {
		t.Error("garbage token verified")
	}

	// Token signed with a different secret
	other, _ := New("other-secret").Sign("alice", time.Hour)
	if _, err := j.Verify(other); err == nil {
		t.Error("token with wrong secret verified")
	}

	// Expired token
	expired, _ := j.Sign("alice", -time.Hour)
	if _, err := j.Verify(expired); err == nil {
		t.Error("expired token verified")
	}
}

func TestSignRequiresUsername(t *testing.T) {
	if _, err := New("s").Sign("", time.Hour); err == nil {
		t.Error("empty username signed")
	}
}

func TestUsernameFromContext(t *testing.T) {
	ctx := context.Background()
	if got := Username(ctx); got != "" {
		t.Errorf("empty context returned %q", got)
	}
	if got := Username(WithUser(ctx, "alice")); got != "alice" {
		t.Errorf("got %q, want alice", got)
	}
}

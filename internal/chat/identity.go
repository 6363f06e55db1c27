package chat

import "strings"

// TokenVerifier resolves an auth token to a display name. Satisfied by
// pkg/auth.JWT. A failed verification is never an error here; the caller
// falls back to an anonymous identity.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// identityFromToken returns the verified identity for a token, or "" if the
// token is absent or invalid.
func identityFromToken(v TokenVerifier, token string) string {
	if v == nil || token == "" {
		return ""
	}
	sub, err := v.Verify(token)
	if err != nil {
		return ""
	}
	return sub
}

// anonTag derives a stable anonymous display name from a connection ID.
func anonTag(connID string) string {
	if len(connID) > 5 {
		connID = connID[:5]
	}
	return "user-" + connID
}

// resolveIdentity picks the display name for a joining connection: a name
// supplied with the join wins over nothing, and the anonymous tag is the
// last resort.
func resolveIdentity(connID, supplied string) string {
	if s := strings.TrimSpace(supplied); s != "" {
		return s
	}
	return anonTag(connID)
}

package ws

import (
	"context"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// Conn wraps a websocket connection with a buffered outbound queue so the
// engine's fan-out never blocks on a slow client.
type Conn struct {
	ws  *websocket.Conn
	out chan []byte
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws, out: make(chan []byte, 256)}
}

// Send queues an outbound event without blocking. Implements chat.Sink.
// Returns false if the client's buffer is full and the event was dropped.
func (c *Conn) Send(b []byte) bool {
	select {
	case c.out <- b:
		return true
	default:
		return false
	}
}

// Read blocks until it receives a text/binary message
// Returns false if connection is closed
func (c *Conn) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := c.ws.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// WriteLoop sends outbound messages + periodic pings
// Exits when ctx is cancelled
func (c *Conn) WriteLoop(ctx context.Context) {
	t := time.NewTicker(20 * time.Second)
	defer t.Stop()

	for {
		select {
		case b := <-c.out:
			_ = c.ws.Write(ctx, websocket.MessageText, b)
		case <-t.C:
			_ = c.ws.Ping(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the WS connection normally
func (c *Conn) Close() error { return c.ws.Close(websocket.StatusNormalClosure, "bye") }

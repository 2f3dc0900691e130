package transport

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one websocket session. A single reader and a single writer
// goroutine own the connection; everything else talks to the client through
// its send channel.
type Client struct {
	SessionID string
	Username  string

	conn *websocket.Conn
	send chan []byte
	hub  *Hub
	log  *slog.Logger

	mu     sync.Mutex
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, sessionID, username string, sendBuffer int) *Client {
	return &Client{
		SessionID: sessionID,
		Username:  username,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		hub:       hub,
		log:       hub.log.With("user", username, "session", sessionID),
	}
}

// enqueue hands a pre-encoded payload to the writer. A full buffer means
// the client cannot keep up; the hub evicts it rather than block fan-out.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// shutdown closes the send channel exactly once, releasing the writer.
func (c *Client) shutdown() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
}

// readPump consumes inbound frames until the peer goes away, then reports
// the close code to the hub. Runs on the connection's reader goroutine.
func (c *Client) readPump() {
	code := websocket.CloseAbnormalClosure
	defer func() {
		c.hub.dropClient(c, code)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if ce, ok := err.(*websocket.CloseError); ok {
				code = ce.Code
			}
			return
		}

		frame, err := DecodeFrame(raw)
		if err != nil {
			c.log.Warn("Discarding malformed frame", "error", err)
			continue
		}
		c.hub.handleFrame(c, frame)
	}
}

// writePump drains the send channel and keeps the connection alive with
// pings. Runs on the connection's writer goroutine.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

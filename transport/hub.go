package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"chat-core/contract"
	"chat-core/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Browser clients connect cross-origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SendHandler receives SEND frames addressed to a conversation topic.
type SendHandler func(sender string, conversationID uuid.UUID, body string)

// Hub owns every live websocket client, routes their inbound frames to the
// lifecycle coordinator, and implements the outbound delivery contract.
// Topic delivery is addressed through the subscription index: every session
// of a subscribed user receives the payload.
type Hub struct {
	log           *slog.Logger
	gate          IGate
	coordinator   contract.ICoordinator
	subscriptions contract.ISubscriptionStore
	sendBuffer    int

	mu       sync.RWMutex
	clients  map[string]*Client            // sessionID -> client
	byUser   map[string]map[string]*Client // username -> sessionID -> client
	onSend   SendHandler
	onSendMu sync.RWMutex
}

// IGate decides connection admission from connect-time headers.
type IGate interface {
	Check(headers map[string]string) (string, []domain.Notification)
}

func NewHub(
	log *slog.Logger,
	gate IGate,
	coordinator contract.ICoordinator,
	subscriptions contract.ISubscriptionStore,
	sendBuffer int,
) *Hub {
	return &Hub{
		log:           log,
		gate:          gate,
		coordinator:   coordinator,
		subscriptions: subscriptions,
		sendBuffer:    sendBuffer,
		clients:       make(map[string]*Client),
		byUser:        make(map[string]map[string]*Client),
	}
}

// SetSendHandler wires the consumer of SEND frames. Set once at startup,
// before the hub accepts connections.
func (h *Hub) SetSendHandler(handler SendHandler) {
	h.onSendMu.Lock()
	h.onSend = handler
	h.onSendMu.Unlock()
}

// ServeWS upgrades the request and runs the session until the peer goes
// away. Credentials travel in headers, with query-parameter fallbacks for
// browser clients that cannot set websocket headers.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	headers := connectHeaders(r)

	principal, gateErrs := h.gate.Check(headers)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	// Problems are reported on the socket before any admission decision so
	// the client learns what went wrong.
	for _, notification := range gateErrs {
		h.writeDirect(conn, notification)
	}

	if principal == "" {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "authentication required"))
		conn.Close()
		return
	}

	sessionID := uuid.NewString()
	client := newClient(h, conn, sessionID, principal, h.sendBuffer)

	h.mu.Lock()
	h.clients[sessionID] = client
	if h.byUser[principal] == nil {
		h.byUser[principal] = make(map[string]*Client)
	}
	h.byUser[principal][sessionID] = client
	h.mu.Unlock()

	h.coordinator.OnConnect(principal, sessionID)

	go client.writePump()
	client.readPump()
}

// SendToUser delivers a notification to every open session of a user.
// Absent users are not an error; they are simply offline.
func (h *Hub) SendToUser(username, destination string, notification domain.Notification) error {
	payload, err := Envelope{Destination: destination, Notification: notification}.Encode()
	if err != nil {
		return fmt.Errorf("encoding notification for %s: %w", username, err)
	}

	h.mu.RLock()
	sessions := make([]*Client, 0, len(h.byUser[username]))
	for _, client := range h.byUser[username] {
		sessions = append(sessions, client)
	}
	h.mu.RUnlock()

	var lagging []*Client
	for _, client := range sessions {
		if !client.enqueue(payload) {
			lagging = append(lagging, client)
		}
	}
	for _, client := range lagging {
		h.log.Warn("Evicting slow client", "user", client.Username, "session", client.SessionID)
		h.dropClient(client, websocket.CloseAbnormalClosure)
		client.conn.Close()
	}
	if len(lagging) == len(sessions) && len(sessions) > 0 {
		return fmt.Errorf("no session of %s accepted the payload", username)
	}
	return nil
}

// SendToTopic delivers a notification to every session of every user
// subscribed to the topic.
func (h *Hub) SendToTopic(topic string, notification domain.Notification) error {
	var firstErr error
	for _, username := range h.subscriptions.FindSubscribers(topic) {
		if err := h.SendToUser(username, topic, notification); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handleFrame dispatches one inbound client frame.
func (h *Hub) handleFrame(c *Client, frame Frame) {
	switch frame.Action {
	case ActionSubscribe:
		h.coordinator.OnSubscribe(c.Username, c.SessionID, frame.Destination)
	case ActionSend:
		conversationID, ok := domain.ParseConversationTopic(frame.Destination)
		if !ok {
			h.writeDirect(c.conn, domain.ErrorNotification("unsupported destination"))
			return
		}
		h.onSendMu.RLock()
		handler := h.onSend
		h.onSendMu.RUnlock()
		if handler != nil {
			handler(c.Username, conversationID, frame.Body)
		}
	default:
		c.log.Warn("Unknown frame action", "action", frame.Action)
	}
}

// dropClient removes the client from the routing tables and reports the
// disconnect. Idempotent: pumps may race on the same session.
func (h *Hub) dropClient(c *Client, closeCode int) {
	h.mu.Lock()
	if _, ok := h.clients[c.SessionID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.SessionID)
	delete(h.byUser[c.Username], c.SessionID)
	if len(h.byUser[c.Username]) == 0 {
		delete(h.byUser, c.Username)
	}
	c.shutdown()
	h.mu.Unlock()

	h.coordinator.OnDisconnect(c.Username, c.SessionID, closeCode)
}

// writeDirect sends one notification synchronously, outside the pump pair.
// Only used before a session is admitted.
func (h *Hub) writeDirect(conn *websocket.Conn, notification domain.Notification) {
	payload, err := Envelope{Notification: notification}.Encode()
	if err != nil {
		return
	}
	conn.WriteMessage(websocket.TextMessage, payload)
}

// connectHeaders collects the credential headers, falling back to query
// parameters for clients that cannot set headers on the upgrade request.
func connectHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string, 2)
	if v := r.Header.Get("Authorization"); v != "" {
		headers["Authorization"] = v
	} else if v := r.URL.Query().Get("token"); v != "" {
		headers["Authorization"] = v
	}
	if v := r.Header.Get("x-api-key"); v != "" {
		headers["x-api-key"] = v
	} else if v := r.URL.Query().Get("api_key"); v != "" {
		headers["x-api-key"] = v
	}
	return headers
}

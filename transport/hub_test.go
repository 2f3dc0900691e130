package transport

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/presence"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const hubAPIKey = "hub-key"

type hubFixture struct {
	hub         *Hub
	validator   *mocks.MockIAuthValidator
	coordinator *mocks.MockICoordinator
	server      *httptest.Server
}

func newHubFixture(t *testing.T) hubFixture {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockIAuthValidator(ctrl)
	coordinator := mocks.NewMockICoordinator(ctrl)
	gate := presence.NewGate(slog.Default(), validator, hubAPIKey)
	hub := NewHub(slog.Default(), gate, coordinator, presence.NewSubscriptionStore(), 8)

	return hubFixture{
		hub:         hub,
		validator:   validator,
		coordinator: coordinator,
		server:      httptest.NewServer(http.HandlerFunc(hub.ServeWS)),
	}
}

func (f hubFixture) wsURL() string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http")
}

func TestHub_RefusesUnauthenticatedConnect(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newHubFixture(t)
	defer f.server.Close()

	// The coordinator carries no expectations: reaching OnConnect without
	// credentials fails the test
	conn, _, err := websocket.DefaultDialer.Dial(f.wsURL(), nil)
	req.NoError(err)
	defer conn.Close()

	// Then both credential problems are reported, in detection order
	expected := []string{
		errors.ErrMissingBearer.Error(),
		errors.ErrMissingAPIKey.Error(),
	}
	for _, reason := range expected {
		var envelope Envelope
		req.NoError(conn.ReadJSON(&envelope))
		req.Equal(domain.NotificationError, envelope.Notification.Type)
		req.Equal(reason, envelope.Notification.Metadata[domain.MetaReason])
	}

	// And the socket is closed without admitting the session
	_, _, err = conn.ReadMessage()
	req.True(websocket.IsCloseError(err, websocket.ClosePolicyViolation))
}

func TestHub_ConnectAndDeliver(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newHubFixture(t)
	defer f.server.Close()

	f.validator.EXPECT().ResolveIdentity("Bearer token").Return("alice", nil)

	connected := make(chan struct{})
	f.coordinator.EXPECT().
		OnConnect("alice", gomock.Any()).
		Do(func(string, string) { close(connected) })
	disconnected := make(chan int, 1)
	f.coordinator.EXPECT().
		OnDisconnect("alice", gomock.Any(), gomock.Any()).
		Do(func(_, _ string, closeCode int) { disconnected <- closeCode })

	header := http.Header{}
	header.Set("Authorization", "Bearer token")
	header.Set("x-api-key", hubAPIKey)
	conn, _, err := websocket.DefaultDialer.Dial(f.wsURL(), header)
	req.NoError(err)
	defer conn.Close()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		req.Fail("session was not admitted in time")
	}

	// When a notification is addressed to the user, the open session gets it
	notification := domain.NewNotification(domain.NotificationMessage).
		WithMeta(domain.MetaSender, "bob").
		WithBody("hello")
	req.NoError(f.hub.SendToUser("alice", domain.UserQueue("alice"), notification))

	var envelope Envelope
	req.NoError(conn.ReadJSON(&envelope))
	req.Equal(domain.UserQueue("alice"), envelope.Destination)
	req.Equal(domain.NotificationMessage, envelope.Notification.Type)
	req.Equal("hello", envelope.Notification.Body)

	// Then a clean close reaches the coordinator with its close code
	req.NoError(conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	select {
	case closeCode := <-disconnected:
		req.Equal(websocket.CloseNormalClosure, closeCode)
	case <-time.After(2 * time.Second):
		req.Fail("disconnect was not reported in time")
	}
}

package transport

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chat-core/domain"

	"github.com/nats-io/nats.go"
)

// NatsTransport publishes notifications on NATS subjects so sibling nodes
// can relay them to their own websocket clients. Subject layout:
//
//	chat.user.{username}.queue   private per-user deliveries
//	chat.topic.{path}            topic broadcasts
type NatsTransport struct {
	log *slog.Logger
	nc  *nats.Conn
}

func NewNatsTransport(log *slog.Logger, url, name string) (*NatsTransport, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", url, err)
	}
	log.Info("Connected to NATS", "url", nc.ConnectedUrl())
	return &NatsTransport{log: log, nc: nc}, nil
}

func (t *NatsTransport) SendToUser(username, destination string, notification domain.Notification) error {
	payload, err := Envelope{Destination: destination, Notification: notification}.Encode()
	if err != nil {
		return err
	}
	return t.nc.Publish("chat.user."+username+".queue", payload)
}

func (t *NatsTransport) SendToTopic(topic string, notification domain.Notification) error {
	payload, err := Envelope{Destination: topic, Notification: notification}.Encode()
	if err != nil {
		return err
	}
	return t.nc.Publish("chat.topic."+topicSubject(topic), payload)
}

func (t *NatsTransport) Close() {
	t.nc.Close()
}

// topicSubject flattens a destination path into a NATS subject token chain.
func topicSubject(topic string) string {
	return strings.ReplaceAll(strings.Trim(topic, "/"), "/", ".")
}

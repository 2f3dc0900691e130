package transport

import (
	"chat-core/contract"
	"chat-core/domain"
)

// Tee fans each delivery out to several transports, typically the local
// websocket hub plus a NATS relay for sibling nodes. Every transport gets
// its attempt; the first error is reported.
type Tee struct {
	transports []contract.ITransport
}

func NewTee(transports ...contract.ITransport) *Tee {
	return &Tee{transports: transports}
}

func (t *Tee) SendToUser(username, destination string, notification domain.Notification) error {
	var firstErr error
	for _, transport := range t.transports {
		if err := transport.SendToUser(username, destination, notification); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *Tee) SendToTopic(topic string, notification domain.Notification) error {
	var firstErr error
	for _, transport := range t.transports {
		if err := transport.SendToTopic(topic, notification); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package transport

import (
	"encoding/json"

	"chat-core/domain"
)

// Frame actions a client may send over the socket.
const (
	ActionSubscribe = "SUBSCRIBE"
	ActionSend      = "SEND"
)

// Frame is the inbound wire format. Clients subscribe to destinations and
// send message bodies; everything else flows server to client.
type Frame struct {
	Action      string `json:"action"`
	Destination string `json:"destination"`
	Body        string `json:"body,omitempty"`
}

func DecodeFrame(raw []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(raw, &f)
	return f, err
}

// Envelope is the outbound wire format: the destination the notification
// was addressed to plus the notification itself.
type Envelope struct {
	Destination  string              `json:"destination"`
	Notification domain.Notification `json:"notification"`
}

func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

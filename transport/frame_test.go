package transport

import (
	"encoding/json"
	"testing"

	"chat-core/domain"

	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	req := require.New(t)

	frame, err := DecodeFrame([]byte(`{"action":"SUBSCRIBE","destination":"/topic/public"}`))
	req.NoError(err)
	req.Equal(ActionSubscribe, frame.Action)
	req.Equal(domain.GlobalTopic, frame.Destination)

	frame, err = DecodeFrame([]byte(`{"action":"SEND","destination":"/topic/chat/abc","body":"hello"}`))
	req.NoError(err)
	req.Equal(ActionSend, frame.Action)
	req.Equal("hello", frame.Body)

	_, err = DecodeFrame([]byte(`not json`))
	req.Error(err)
}

func TestEnvelopeEncode(t *testing.T) {
	req := require.New(t)

	envelope := Envelope{
		Destination: domain.UserQueue("alice"),
		Notification: domain.NewNotification(domain.NotificationUserState).
			WithMeta(domain.MetaUser, "bob").
			WithMeta(domain.MetaState, string(domain.Offline)),
	}

	raw, err := envelope.Encode()
	req.NoError(err)

	var decoded map[string]any
	req.NoError(json.Unmarshal(raw, &decoded))
	req.Equal(domain.UserQueue("alice"), decoded["destination"])

	notification := decoded["notification"].(map[string]any)
	req.Equal(string(domain.NotificationUserState), notification["type"])
	metadata := notification["metadata"].(map[string]any)
	req.Equal("bob", metadata[domain.MetaUser])
	req.Equal(string(domain.Offline), metadata[domain.MetaState])
}

package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/mocks"
	"chat-core/presence"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestDeliveryWorker_RoutesByRecipient(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)

	jobs := make(chan presence.Delivery, 2)
	worker := NewDeliveryWorker(slog.Default(), jobs, transport)

	queued := domain.NewNotification(domain.NotificationOnlineUsers)
	broadcast := domain.NewNotification(domain.NotificationUserState)

	delivered := make(chan struct{}, 2)
	transport.EXPECT().
		SendToUser("alice", domain.UserQueue("alice"), queued).
		DoAndReturn(func(string, string, domain.Notification) error {
			delivered <- struct{}{}
			return nil
		})
	transport.EXPECT().
		SendToTopic(domain.GlobalTopic, broadcast).
		DoAndReturn(func(string, domain.Notification) error {
			delivered <- struct{}{}
			return nil
		})

	// A recipient routes to the private queue, an empty one to the topic
	jobs <- presence.Delivery{Recipient: "alice", Destination: domain.UserQueue("alice"), Notification: queued}
	jobs <- presence.Delivery{Destination: domain.GlobalTopic, Notification: broadcast}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-delivered:
		case <-time.After(1 * time.Second):
			req.Fail("delivery did not happen in time")
		}
	}

	cancel()
	req.ErrorIs(<-done, context.Canceled)
}

func TestDeliveryWorker_FailedRecipientDoesNotStopOthers(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)

	jobs := make(chan presence.Delivery, 3)
	worker := NewDeliveryWorker(slog.Default(), jobs, transport)

	notification := domain.NewNotification(domain.NotificationOnlineUsers)

	// Given the first recipient's session rejecting the payload
	transport.EXPECT().
		SendToUser("alice", domain.UserQueue("alice"), notification).
		Return(fmt.Errorf("no session of alice accepted the payload"))

	// Then the remaining queued recipients are still served
	delivered := make(chan string, 2)
	transport.EXPECT().
		SendToUser("bob", domain.UserQueue("bob"), notification).
		DoAndReturn(func(username, _ string, _ domain.Notification) error {
			delivered <- username
			return nil
		})
	transport.EXPECT().
		SendToUser("carol", domain.UserQueue("carol"), notification).
		DoAndReturn(func(username, _ string, _ domain.Notification) error {
			delivered <- username
			return nil
		})

	for _, recipient := range []string{"alice", "bob", "carol"} {
		jobs <- presence.Delivery{
			Recipient:    recipient,
			Destination:  domain.UserQueue(recipient),
			Notification: notification,
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	survivors := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case username := <-delivered:
			survivors[username] = true
		case <-time.After(1 * time.Second):
			req.Fail("delivery did not happen in time")
		}
	}
	req.True(survivors["bob"])
	req.True(survivors["carol"])

	cancel()
	req.ErrorIs(<-done, context.Canceled)
}

func TestDeliveryWorker_StopsOnClosedQueue(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)

	jobs := make(chan presence.Delivery)
	worker := NewDeliveryWorker(slog.Default(), jobs, transport)
	close(jobs)

	req.NoError(worker.Run(context.Background()))
}

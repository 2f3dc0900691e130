package workers

import (
	"context"
	"log/slog"

	"chat-core/contract"
	"chat-core/observability"
	"chat-core/presence"
)

// DeliveryWorker drains the broadcaster's delivery queue and pushes each
// notification through the transport. Several instances run under the
// supervisor; a failing recipient only costs its own delivery.
type DeliveryWorker struct {
	log       *slog.Logger
	jobs      <-chan presence.Delivery
	transport contract.ITransport
}

func NewDeliveryWorker(log *slog.Logger, jobs <-chan presence.Delivery, transport contract.ITransport) *DeliveryWorker {
	return &DeliveryWorker{log: log, jobs: jobs, transport: transport}
}

func (w *DeliveryWorker) Run(ctx context.Context) error {
	w.log.Info("Starting delivery worker")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				return nil
			}
			w.deliver(job)
		}
	}
}

func (w *DeliveryWorker) deliver(job presence.Delivery) {
	var err error
	if job.Recipient != "" {
		err = w.transport.SendToUser(job.Recipient, job.Destination, job.Notification)
	} else {
		err = w.transport.SendToTopic(job.Destination, job.Notification)
	}
	if err != nil {
		observability.Deliveries.WithLabelValues(observability.ResultFailed).Inc()
		w.log.Warn("Delivery failed",
			"recipient", job.Recipient, "destination", job.Destination,
			"type", job.Notification.Type, "error", err)
		return
	}
	observability.Deliveries.WithLabelValues(observability.ResultDelivered).Inc()
}

package messaging

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pawfectstay/booking-service/internal/core/ports"
)

// message is the wire envelope: the event type rides alongside the payload
// so consumers can distinguish created from status-changed on one queue.
type message struct {
	Type  string                 `json:"type"`
	Event ports.ReservationEvent `json:"event"`
}

func (rmq *RabbitMQBroker) PublishReservationEvent(ctx context.Context, eventType string, evt ports.ReservationEvent) error {
	body, err := json.Marshal(message{Type: eventType, Event: evt})
	if err != nil {
		return err
	}

	// Respect context deadline
	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	// Circuit breaker protects the publish path
	_, err = rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}

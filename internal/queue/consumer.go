package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/starlightcine/starlight-api/internal/model"
)

// SaleStore is the slice of the sale repository the consumer needs.
type SaleStore interface {
	Create(ctx context.Context, s *model.Sale) error
}

// StartOrderConsumer connects to RabbitMQ, declares the order.created
// queue and consumes it, writing one sale row per event. It runs a
// reconnect loop with backoff and never returns; run it on its own
// goroutine. A message that cannot be processed is rejected without
// requeue so the loop keeps moving.
func StartOrderConsumer(url string, sales SaleStore) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("order-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, sales); err != nil {
			log.Printf("order-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, sales SaleStore) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("order-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(OrderQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(OrderQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, sales); err != nil {
			log.Printf("order-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// handleMessage turns one order.created event into a sale row. The sale
// insert is idempotent on the folio, so a redelivered event is harmless.
func handleMessage(body []byte, sales SaleStore) error {
	var ev OrderCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Folio == "" || ev.OrderID == 0 {
		return fmt.Errorf("event missing folio or order id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sale := &model.Sale{
		Folio:    ev.Folio,
		OrderID:  ev.OrderID,
		Subtotal: ev.Subtotal,
		Tax:      ev.Tax,
		Total:    ev.Total,
	}
	if err := sales.Create(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

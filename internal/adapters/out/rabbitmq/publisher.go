// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. Events are emitted after the database transaction commits;
// delivery is best-effort and failures are logged by the callers.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"shop/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyOrderConfirmed = "order.confirmed"
	routingKeyOrderPaid      = "order.paid"
	routingKeyOrderCancelled = "order.cancelled"
)

// Connection manages a RabbitMQ connection and channel pair.
type Connection struct {
	url     string
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
	mu      sync.RWMutex
}

// NewConnection dials RabbitMQ and opens a channel.
func NewConnection(url string, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		url:    url,
		logger: logger,
	}

	if err := c.connect(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Connection) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = channel

	c.logger.Info("connected to RabbitMQ")
	return nil
}

// Channel returns the current channel.
func (c *Connection) Channel() *amqp.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channel
}

// Close closes the channel and the underlying connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// OrderEventMessage is the wire format of an order lifecycle event.
type OrderEventMessage struct {
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	TotalCurrency string    `json:"total_currency"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher implements ports.OrderEventPublisher on top of a RabbitMQ topic
// exchange. One routing key per lifecycle transition.
type Publisher struct {
	conn     *Connection
	exchange string
}

// NewPublisher declares the topic exchange and returns a publisher bound to
// it.
func NewPublisher(conn *Connection, exchange string) (*Publisher, error) {
	err := conn.Channel().ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		exchange: exchange,
	}, nil
}

// PublishOrderConfirmed announces that an order was confirmed.
func (p *Publisher) PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, routingKeyOrderConfirmed, aggregate)
}

// PublishOrderPaid announces that a confirmed order was paid.
func (p *Publisher) PublishOrderPaid(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, routingKeyOrderPaid, aggregate)
}

// PublishOrderCancelled announces that an order was cancelled.
func (p *Publisher) PublishOrderCancelled(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, routingKeyOrderCancelled, aggregate)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, aggregate *order.Order) error {
	total := aggregate.Total()

	message := OrderEventMessage{
		OrderID:       aggregate.ID().String(),
		CustomerID:    aggregate.CustomerID().String(),
		Status:        aggregate.Status().String(),
		TotalAmount:   total.Amount().String(),
		TotalCurrency: total.Currency(),
		OccurredAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.conn.Channel().PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	return nil
}

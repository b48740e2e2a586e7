// Package amqp bridges the parsing engine to a message broker: raw text
// comes in on one queue, structured record batches go out on another.
package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"jizhang/internal/core"
)

type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	parseQueue   string
	recordsQueue string
}

func NewClient(url, exchangeName, parseQueue, recordsQueue string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		parseQueue:   parseQueue,
		recordsQueue: recordsQueue,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queues: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	for _, queue := range []string{c.parseQueue, c.recordsQueue} {
		_, err = c.channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}

		// Routing key matches the queue name on a direct exchange.
		err = c.channel.QueueBind(queue, queue, c.exchangeName, false, nil)
		if err != nil {
			return fmt.Errorf("bind queue %s: %w", queue, err)
		}
	}

	return nil
}

// PublishParseRequest publishes one raw text input for asynchronous parsing.
func (c *Client) PublishParseRequest(ctx context.Context, text, source string) error {
	body, err := NewParseRequestMessage(text, source).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal parse request: %w", err)
	}

	if err := c.publish(ctx, c.parseQueue, body); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Published parse request",
		"source", source,
		"exchange", c.exchangeName,
		"queue", c.parseQueue)
	return nil
}

// PublishRecords publishes the structured records produced from one input.
func (c *Client) PublishRecords(ctx context.Context, source string, records []core.ExpenseRecord) error {
	body, err := NewRecordBatchMessage(source, records).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal record batch: %w", err)
	}

	if err := c.publish(ctx, c.recordsQueue, body); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Published record batch",
		"source", source,
		"count", len(records),
		"exchange", c.exchangeName,
		"queue", c.recordsQueue)
	return nil
}

func (c *Client) publish(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// ConsumeParseRequests consumes parse requests until ctx is cancelled. A
// handler error rejects and requeues the delivery; undecodable messages are
// rejected without requeue.
func (c *Client) ConsumeParseRequests(ctx context.Context, handler func(context.Context, *ParseRequestMessage) error) error {
	msgs, err := c.channel.Consume(
		c.parseQueue, // queue
		"",           // consumer
		false,        // auto-ack (we want manual ack)
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming parse requests", "queue", c.parseQueue)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := ParseRequestMessageFromJSON(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal parse request", "error", err)
				delivery.Nack(false, false) // reject and don't requeue
				continue
			}

			if err := handler(ctx, msg); err != nil {
				slog.ErrorContext(ctx, "Failed to handle parse request",
					"error", err,
					"source", msg.Source)
				delivery.Nack(false, true) // reject and requeue
				continue
			}

			delivery.Ack(false)
		}
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

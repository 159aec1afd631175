package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	caller  *CancelCaller
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		caller:  NewCancelCaller(apiURL, apiKey, &http.Client{Timeout: 10 * time.Second}),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		ExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}

				if c.caller.Handle(ctx, msg.Body) == OutcomeRequeue {
					c.retry(ctx, msg)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

// retry reschedules msg with backoff and acks the original. When the
// republish fails the message is requeued as is.
func (c *Consumer) retry(ctx context.Context, msg amqp091.Delivery) {
	attempt, delay, err := reschedule(ctx, c.channel, msg)
	if err != nil {
		logger.Error("[Consumer] err reschedule message", zap.String("error", err.Error()))
		msg.Nack(false, true)
		return
	}
	logger.Warn("[Consumer] message rescheduled",
		zap.Int("attempt", attempt),
		zap.Duration("delay", delay))
	msg.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

type Outcome int

const (
	OutcomeAck Outcome = iota
	OutcomeRequeue
)

// CancelCaller turns an expiration message into a call to the internal
// cancel endpoint of the web service.
type CancelCaller struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewCancelCaller(apiURL, apiKey string, client *http.Client) *CancelCaller {
	return &CancelCaller{apiURL: apiURL, apiKey: apiKey, client: client}
}

// Handle decodes one message body and calls the cancel endpoint. Malformed
// messages and 4xx answers are acknowledged; transport errors and 5xx
// answers are retried later.
func (c *CancelCaller) Handle(ctx context.Context, body []byte) Outcome {
	var msg TransactionExpirationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Error("[Consumer] err unmarshal message", zap.String("error", err.Error()))
		return OutcomeAck
	}

	if err := c.cancel(ctx, msg.TransactionID); err != nil {
		logger.Error("[Consumer] err cancel transaction",
			zap.Uint64("transaction_id", msg.TransactionID),
			zap.String("error", err.Error()))
		return OutcomeRequeue
	}

	logger.Info("[Consumer] transaction expiration handled", zap.Uint64("transaction_id", msg.TransactionID))
	return OutcomeAck
}

func (c *CancelCaller) cancel(ctx context.Context, transactionID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/transaction/%d/cancel", c.apiURL, transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "transaction-expiration-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

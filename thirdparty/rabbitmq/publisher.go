package rabbitmq

import (
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher schedules delayed transaction expiration messages.
type Publisher interface {
	PublishTransactionExpiration(msg TransactionExpirationMessage) error
}

type TransactionExpirationMessage struct {
	TransactionID uint64    `json:"transaction_id"`
	UserID        uint64    `json:"user_id"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*AMQPPublisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

func (p *AMQPPublisher) PublishTransactionExpiration(msg TransactionExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		ExpirationExchange,   // exchange
		ExpirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func delayMillis(expiresAt, now time.Time) int64 {
	delay := expiresAt.Sub(now).Milliseconds()
	if delay < 0 {
		return 0
	}
	return delay
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

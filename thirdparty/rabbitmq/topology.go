package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	ExpirationExchange   = "transaction_expiration_exchange"
	ExpirationQueue      = "transaction_expiration_queue"
	ExpirationRoutingKey = "transaction_expiration"
)

// dial opens a channel and declares the delayed exchange, the expiration
// queue and their binding. Publisher and consumer share this topology.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Declare the delayed exchange
	err = channel.ExchangeDeclare(
		ExpirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		ExpirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	// Bind queue to exchange
	err = channel.QueueBind(
		ExpirationQueue,      // queue name
		ExpirationRoutingKey, // routing key
		ExpirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

package rabbitmq

import (
	"context"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	retryCountHeader = "x-retry-count"
	retryBaseDelay   = 5 * time.Second
	retryMaxDelay    = 5 * time.Minute
)

// channelPublisher is the part of *amqp091.Channel used to reschedule a
// delivery.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// retryDelay doubles from retryBaseDelay with every attempt and stops
// growing at retryMaxDelay.
func retryDelay(attempt int) time.Duration {
	delay := retryBaseDelay
	for i := 0; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > retryMaxDelay {
		return retryMaxDelay
	}
	return delay
}

// retryCount reads how many times a delivery has been rescheduled.
func retryCount(headers amqp091.Table) int {
	switch v := headers[retryCountHeader].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

// reschedule publishes the body of d back to the delayed exchange with a
// growing x-delay, so a failing cancel endpoint is not hammered.
func reschedule(ctx context.Context, ch channelPublisher, d amqp091.Delivery) (int, time.Duration, error) {
	attempt := retryCount(d.Headers) + 1
	delay := retryDelay(attempt - 1)

	err := ch.PublishWithContext(ctx,
		ExpirationExchange,
		ExpirationRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  d.ContentType,
			DeliveryMode: amqp091.Persistent,
			Body:         d.Body,
			Headers: amqp091.Table{
				"x-delay":        delay.Milliseconds(),
				retryCountHeader: int64(attempt),
			},
		},
	)
	return attempt, delay, err
}

package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
}

func (r *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	r.exchange, r.key, r.msg = exchange, key, msg
	return r.err
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 5 * time.Second},
		{attempt: 1, want: 10 * time.Second},
		{attempt: 3, want: 40 * time.Second},
		{attempt: 6, want: 5 * time.Minute},
		{attempt: 100, want: 5 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestRetryCount(t *testing.T) {
	assert.Equal(t, 0, retryCount(nil))
	assert.Equal(t, 0, retryCount(amqp091.Table{retryCountHeader: "x"}))
	assert.Equal(t, 2, retryCount(amqp091.Table{retryCountHeader: int32(2)}))
	assert.Equal(t, 4, retryCount(amqp091.Table{retryCountHeader: int64(4)}))
}

func TestReschedule(t *testing.T) {
	body := []byte(`{"transaction_id":7,"user_id":3}`)

	t.Run("first failure waits the base delay", func(t *testing.T) {
		ch := &recordingChannel{}
		attempt, delay, err := reschedule(context.Background(), ch, amqp091.Delivery{Body: body, ContentType: "application/json"})
		require.NoError(t, err)

		assert.Equal(t, 1, attempt)
		assert.Equal(t, retryBaseDelay, delay)
		assert.Equal(t, ExpirationExchange, ch.exchange)
		assert.Equal(t, ExpirationRoutingKey, ch.key)
		assert.Equal(t, body, ch.msg.Body)
		assert.Equal(t, int64(5000), ch.msg.Headers["x-delay"])
		assert.Equal(t, int64(1), ch.msg.Headers[retryCountHeader])
	})

	t.Run("later failures back off", func(t *testing.T) {
		ch := &recordingChannel{}
		d := amqp091.Delivery{Body: body, Headers: amqp091.Table{retryCountHeader: int64(2)}}
		attempt, delay, err := reschedule(context.Background(), ch, d)
		require.NoError(t, err)

		assert.Equal(t, 3, attempt)
		assert.Equal(t, 20*time.Second, delay)
		assert.Equal(t, int64(20000), ch.msg.Headers["x-delay"])
	})

	t.Run("publish error is returned", func(t *testing.T) {
		ch := &recordingChannel{err: errors.New("channel closed")}
		_, _, err := reschedule(context.Background(), ch, amqp091.Delivery{Body: body})
		assert.Error(t, err)
	})
}

package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancelCaller_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		status     int
		want       Outcome
		wantCalled bool
	}{
		{
			name:       "success acks",
			body:       `{"transaction_id":7,"user_id":3}`,
			status:     http.StatusOK,
			want:       OutcomeAck,
			wantCalled: true,
		},
		{
			name:       "conflict acks",
			body:       `{"transaction_id":7,"user_id":3}`,
			status:     http.StatusConflict,
			want:       OutcomeAck,
			wantCalled: true,
		},
		{
			name:       "server error requeues",
			body:       `{"transaction_id":7,"user_id":3}`,
			status:     http.StatusInternalServerError,
			want:       OutcomeRequeue,
			wantCalled: true,
		},
		{
			name:       "malformed body acks without calling",
			body:       `{not json`,
			status:     http.StatusOK,
			want:       OutcomeAck,
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/internal/v1/transaction/7/cancel", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			caller := NewCancelCaller(srv.URL, "secret", srv.Client())
			got := caller.Handle(context.Background(), []byte(tt.body))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestCancelCaller_Handle_Unreachable(t *testing.T) {
	caller := NewCancelCaller("http://127.0.0.1:1", "secret", &http.Client{Timeout: time.Second})
	got := caller.Handle(context.Background(), []byte(`{"transaction_id":1}`))
	assert.Equal(t, OutcomeRequeue, got)
}

func TestDelayMillis(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(90000), delayMillis(now.Add(90*time.Second), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Minute), now))
}

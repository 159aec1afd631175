package context

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetSessionID returns the session (token jti) the request was authenticated with.
func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.SessionIDKey).(string)
	return v, ok && v != ""
}

func WithSession(ctx context.Context, userID uint64, sessionID string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}

// Viewer returns a pointer to the authenticated user id, or nil for guests.
func Viewer(ctx context.Context) *uint64 {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &id
}

package appctx

import (
	"context"
)

// Context key for storing the correlation id of the event being handled
type contextKey string

const EventIDContextKey contextKey = "event_id"

// SetEventID adds the correlation id to the context
func SetEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, EventIDContextKey, eventID)
}

// GetEventID extracts the correlation id from the context, or "-" when there is none
func GetEventID(ctx context.Context) string {
	eventID, ok := ctx.Value(EventIDContextKey).(string)
	if !ok || eventID == "" {
		return "-"
	}
	return eventID
}

package ports

import (
	"context"
)

// AdminBroadcaster pushes real-time events to admin dashboard observers.
// Broadcasting is best-effort: failures are logged, never propagated.
type AdminBroadcaster interface {
	// EmitToAdmin publishes a named event with a JSON-serializable payload.
	EmitToAdmin(ctx context.Context, eventName string, payload any) error
}

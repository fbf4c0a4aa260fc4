package ports

import (
	"context"

	"booking/internal/core/domain/services"
)

// NotificationSender delivers push notifications to partner devices.
// Delivery is fire-and-forget: implementations and callers log failures but
// never propagate them into the triggering command.
type NotificationSender interface {
	// Send delivers one push message.
	Send(ctx context.Context, msg services.PushMessage) error
}

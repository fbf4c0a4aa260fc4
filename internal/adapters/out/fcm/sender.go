// Package fcm delivers partner push notifications through Firebase Cloud
// Messaging.
package fcm

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// messagingClient is the slice of *messaging.Client the sender uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotificationSender implements ports.NotificationSender on top of FCM.
type FCMNotificationSender struct {
	client messagingClient
	logger *slog.Logger
}

// NewFCMNotificationSender initializes the Firebase app from a service
// account credentials file and returns a sender ready for use.
func NewFCMNotificationSender(ctx context.Context, credentialsFile string, logger *slog.Logger) (*FCMNotificationSender, error) {
	if credentialsFile == "" {
		return nil, errs.NewValueIsRequiredError("credentialsFile")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("create messaging client: %w", err)
	}

	return &FCMNotificationSender{
		client: client,
		logger: logger.With("component", "fcm"),
	}, nil
}

// Send delivers one push message. An empty sound selector produces a silent
// data-style notification on the device.
func (s *FCMNotificationSender) Send(ctx context.Context, msg services.PushMessage) error {
	if msg.Token == "" {
		return errs.NewValueIsRequiredError("msg.Token")
	}

	message := &messaging.Message{
		Token: msg.Token,
		Data:  msg.Data,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Android: &messaging.AndroidConfig{
			Priority: msg.Priority,
			Notification: &messaging.AndroidNotification{
				ChannelID: msg.Channel,
				Sound:     msg.Sound,
			},
		},
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send push to %q: %w", msg.Token, err)
	}

	s.logger.Debug("push delivered", "messageId", id, "channel", msg.Channel)
	return nil
}

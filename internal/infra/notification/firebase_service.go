package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// topicSender is the part of the messaging client the notifier uses
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client topicSender
	topic  string
	logger *slog.Logger
}

// NewFirebaseNotifier sends new-order pushes to an FCM topic the admin devices subscribe to
func NewFirebaseNotifier(ctx context.Context, app *firebase.App, topic string, logger *slog.Logger) (service.OrderNotifier, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// NotifyNewOrder publishes the notice to the admin topic
func (n *firebaseNotifier) NotifyNewOrder(ctx context.Context, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: n.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := n.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.DebugContext(ctx, "[FCM] Order notice sent",
		slog.String("topic", n.topic),
		slog.String("message_id", id),
	)

	return nil
}

type noopNotifier struct{}

// NewNoopNotifier is used when pushes are disabled
func NewNoopNotifier() service.OrderNotifier {
	return noopNotifier{}
}

func (noopNotifier) NotifyNewOrder(context.Context, string, string, map[string]string) error {
	return nil
}

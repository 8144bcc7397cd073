package notification

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// LogNotifier implements ports.NotificationService by logging each notification.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (l *LogNotifier) Send(ctx context.Context, n ports.Notification) error {
	env, err := newEnvelope(n, time.Now())
	if err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "Notification",
		"notification_id", env.ID,
		"title", env.Title,
		"message", env.Message,
		"type", env.Type,
		"priority", env.Priority,
		"user_ids", env.Audience.UserIDs,
		"admins", env.Audience.Admins,
		"broadcast", env.Audience.Broadcast,
	)
	return nil
}

func (l *LogNotifier) SendToUser(ctx context.Context, userID kernel.UUID, n ports.Notification) error {
	return l.Send(ctx, toUser(n, userID))
}

func (l *LogNotifier) SendToAdmins(ctx context.Context, n ports.Notification) error {
	return l.Send(ctx, toAdmins(n))
}

func (l *LogNotifier) Broadcast(ctx context.Context, n ports.Notification) error {
	return l.Send(ctx, toEveryone(n))
}

// Package notify defines the delivery channel for settlement summaries.
// The engine produces the summary text; transports (SMS, email, share link)
// live behind the Notifier interface and are provided by the deployment.
package notify

import (
	"context"
	"log/slog"
)

// Notifier delivers a rendered settlement summary to a group.
type Notifier interface {
	// SendSummary delivers the summary text for the given group. Delivery
	// failures are the transport's problem; the settlement is already
	// persisted when this is called.
	SendSummary(ctx context.Context, groupID, text string) error
}

// LogNotifier writes summaries to the log. Used in development and as the
// default when no transport is configured.
type LogNotifier struct{}

// SendSummary logs the summary instead of delivering it.
func (LogNotifier) SendSummary(ctx context.Context, groupID, text string) error {
	slog.InfoContext(ctx, "settlement summary ready", "group_id", groupID, "chars", len(text))
	return nil
}

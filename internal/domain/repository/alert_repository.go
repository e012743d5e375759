package repository

import (
	"context"

	"github.com/vessel-monitor/internal/domain"
)

// NotificationSink delivers user-visible alert notifications.
type NotificationSink interface {
	// Send pushes one notification. Implementations must be safe for
	// concurrent use.
	Send(ctx context.Context, alert domain.AlertEvent) error
}

// AudioAlarmSink drives the audible alarm channel.
type AudioAlarmSink interface {
	// Play starts the alarm profile for an event.
	Play(ctx context.Context, alert domain.AlertEvent) error

	// StopAll silences every active alarm for the vessel.
	StopAll(ctx context.Context, boatID string) error
}

// SinkFactory builds the per-session alert sinks.
type SinkFactory interface {
	// Sinks returns the notification and alarm sinks for one vessel.
	Sinks(boatID string) (NotificationSink, AudioAlarmSink)
}

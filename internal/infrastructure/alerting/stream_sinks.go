// Package alerting provides the delivery-side implementations of the alert
// sinks: a Redis Streams publisher consumed by the push/app gateway, and a
// log-only variant for running without delivery infrastructure.
package alerting

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
)

type streamSink struct {
	streams repository.StreamRepository
	logger  *zap.Logger
}

// NewStreamSinkFactory creates a factory whose sinks publish alert events to
// the dispatch stream. The mobile gateway consumes that stream and owns the
// actual push delivery and device audio.
func NewStreamSinkFactory(streams repository.StreamRepository, logger *zap.Logger) repository.SinkFactory {
	return &streamSink{streams: streams, logger: logger}
}

// Sinks returns the shared stream publisher for a vessel. The publisher is
// stateless per boat, so both sinks are the same value.
func (s *streamSink) Sinks(boatID string) (repository.NotificationSink, repository.AudioAlarmSink) {
	return s, s
}

func (s *streamSink) Send(ctx context.Context, alert domain.AlertEvent) error {
	alert.Kind = domain.AlertNotification
	if err := s.streams.PublishToStream(ctx, domain.StreamAlertDispatch, &alert); err != nil {
		s.logger.Error("Failed to publish notification",
			zap.String("boat_id", alert.BoatID), zap.Error(err))
		return err
	}
	return nil
}

func (s *streamSink) Play(ctx context.Context, alert domain.AlertEvent) error {
	alert.Kind = domain.AlertAlarm
	alert.Action = domain.AlarmPlay
	if err := s.streams.PublishToStream(ctx, domain.StreamAlertDispatch, &alert); err != nil {
		s.logger.Error("Failed to publish alarm command",
			zap.String("boat_id", alert.BoatID), zap.Error(err))
		return err
	}
	return nil
}

func (s *streamSink) StopAll(ctx context.Context, boatID string) error {
	event := &domain.AlertEvent{
		Kind:      domain.AlertAlarm,
		BoatID:    boatID,
		Action:    domain.AlarmStopAll,
		Timestamp: time.Now().UTC(),
	}
	if err := s.streams.PublishToStream(ctx, domain.StreamAlertDispatch, event); err != nil {
		s.logger.Error("Failed to publish alarm stop",
			zap.String("boat_id", boatID), zap.Error(err))
		return err
	}
	return nil
}

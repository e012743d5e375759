package alerting

import (
	"context"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
)

type logSink struct {
	logger *zap.Logger
}

// NewLogSinkFactory creates a factory whose sinks only log. Used in demo
// deployments and tests where no delivery gateway is running.
func NewLogSinkFactory(logger *zap.Logger) repository.SinkFactory {
	return &logSink{logger: logger}
}

func (s *logSink) Sinks(boatID string) (repository.NotificationSink, repository.AudioAlarmSink) {
	return s, s
}

func (s *logSink) Send(ctx context.Context, alert domain.AlertEvent) error {
	s.logger.Info("ALERT",
		zap.String("boat_id", alert.BoatID),
		zap.String("severity", string(alert.Severity)),
		zap.String("title", alert.Title),
		zap.String("message", alert.Message))
	return nil
}

func (s *logSink) Play(ctx context.Context, alert domain.AlertEvent) error {
	s.logger.Info("ALARM",
		zap.String("boat_id", alert.BoatID),
		zap.String("profile", alert.Profile))
	return nil
}

func (s *logSink) StopAll(ctx context.Context, boatID string) error {
	s.logger.Info("ALARM STOP", zap.String("boat_id", boatID))
	return nil
}

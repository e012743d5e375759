// Package coastguard implements the regulatory reporting client for the
// national coast guard incident API.
package coastguard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/config"
	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a new client for the coast guard incident API.
func NewClient(cfg *config.ReportingConfig, logger *zap.Logger) repository.RegulatoryReporter {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// reportAck is the incident API's acknowledgment payload.
type reportAck struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
}

// Report submits one violation summary. Callers treat any error as
// "not accepted"; the record itself is never blocked on reporting.
func (c *client) Report(ctx context.Context, record *domain.ViolationRecord) error {
	summary := record.Summary()

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	url := fmt.Sprintf("%s/v1/incident-reports", c.baseURL)

	c.logger.Debug("Submitting violation report",
		zap.String("record_id", summary.RecordID.String()),
		zap.String("zone_id", summary.ZoneID),
		zap.String("severity", string(summary.Severity)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create report request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute report request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Incident API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("incident API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var ack reportAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		c.logger.Error("Failed to decode report acknowledgment", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info("Violation reported to coast guard",
		zap.String("record_id", summary.RecordID.String()),
		zap.String("report_id", ack.ReportID),
		zap.String("status", ack.Status))

	return nil
}

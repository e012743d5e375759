package tracking_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/worker/tracking"
)

func controlMessage(t *testing.T, id string, event domain.ControlEvent) domain.StreamMessage {
	t.Helper()
	event.Timestamp = time.Now().UTC()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

// TestControlWorker_Name tests the worker name
func TestControlWorker_Name(t *testing.T) {
	w := tracking.NewControlWorker(&MockStreamRepository{}, newManager(t), "control-host-1", zap.NewNop())
	assert.Equal(t, "monitor-control", w.Name())
}

// TestControlWorker_Stop tests graceful stop
func TestControlWorker_Stop(t *testing.T) {
	w := tracking.NewControlWorker(&MockStreamRepository{}, newManager(t), "control-host-1", zap.NewNop())

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

// TestControlWorker_ContextCancellation tests worker stops on context cancellation
func TestControlWorker_ContextCancellation(t *testing.T) {
	mockStream := &MockStreamRepository{}
	w := tracking.NewControlWorker(mockStream, newManager(t), "control-host-1", zap.NewNop())

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamMonitorControl, "control-host-1").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamMonitorControl, "control-host-1", mock.AnythingOfType("string"), int64(10)).
		Return([]domain.StreamMessage{}, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop on context cancellation")
	}

	mockStream.AssertExpectations(t)
}

// TestControlWorker_StopCommand tests a remote stop lands on the owned session
func TestControlWorker_StopCommand(t *testing.T) {
	mockStream := &MockStreamRepository{}
	manager := newManager(t)
	w := tracking.NewControlWorker(mockStream, manager, "control-host-1", zap.NewNop())

	_, err := manager.StartSession(context.Background(), domain.VesselMeta{BoatID: "MH-1234"}, false)
	require.NoError(t, err)
	require.Equal(t, 1, manager.Len())

	messages := []domain.StreamMessage{
		controlMessage(t, "1-0", domain.ControlEvent{Action: domain.ControlStop, BoatID: "MH-1234"}),
		// Commands for boats owned by other instances are acked and skipped.
		controlMessage(t, "2-0", domain.ControlEvent{Action: domain.ControlStop, BoatID: "GJ-7777"}),
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamMonitorControl, "control-host-1").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamMonitorControl, "control-host-1", mock.AnythingOfType("string"), int64(10)).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamMonitorControl, "control-host-1", mock.AnythingOfType("string"), int64(10)).
		Return([]domain.StreamMessage{}, nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamMonitorControl, "control-host-1", []string{"1-0", "2-0"}).
		Return(nil)

	go func() {
		_ = w.Start(context.Background())
	}()
	defer func() {
		_ = w.Stop()
	}()

	assert.Eventually(t, func() bool {
		return manager.Len() == 0
	}, 2*time.Second, 20*time.Millisecond)

	mockStream.AssertExpectations(t)
}

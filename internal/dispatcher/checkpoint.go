package dispatcher

import (
	"encoding/json"
	"time"

	"github.com/vessel-monitor/internal/domain"
)

// CheckpointKey returns the KV key holding a vessel's debounce checkpoint.
func CheckpointKey(boatID string) string {
	return "monitor:debounce:" + boatID
}

type checkpointEntry struct {
	ZoneID string    `json:"zone_id"`
	Type   string    `json:"type"`
	At     time.Time `json:"at"`
}

// Snapshot serializes the debounce state so a restarted process does not
// replay alerts that were delivered just before the restart.
func (d *Dispatcher) Snapshot() ([]byte, error) {
	d.mu.Lock()
	entries := make([]checkpointEntry, 0, len(d.lastAlert))
	for key, at := range d.lastAlert {
		entries = append(entries, checkpointEntry{
			ZoneID: key.ZoneID,
			Type:   string(key.Type),
			At:     at,
		})
	}
	d.mu.Unlock()
	return json.Marshal(entries)
}

// Restore loads a checkpoint produced by Snapshot, replacing the current
// debounce state.
func (d *Dispatcher) Restore(data []byte) error {
	var entries []checkpointEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	restored := make(map[alertKey]time.Time, len(entries))
	for _, e := range entries {
		restored[alertKey{ZoneID: e.ZoneID, Type: domain.EventType(e.Type)}] = e.At
	}

	d.mu.Lock()
	d.lastAlert = restored
	d.mu.Unlock()
	return nil
}

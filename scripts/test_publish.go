//go:build ignore
// +build ignore

// Publishes a handful of position fixes onto the ingest stream so a running
// worker can be exercised end to end:
//
//	go run scripts/test_publish.go -redis localhost:6379 -boat MH-1234
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type PositionFixEvent struct {
	BoatID    string      `json:"boat_id"`
	Lat       float64     `json:"lat"`
	Lon       float64     `json:"lon"`
	AccuracyM float64     `json:"accuracy_m"`
	Timestamp time.Time   `json:"timestamp"`
	Vessel    *VesselMeta `json:"vessel,omitempty"`
}

type VesselMeta struct {
	BoatID        string `json:"boat_id"`
	LicenseNumber string `json:"license_number,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	boatID := flag.String("boat", "MH-1234", "boat registration number")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// A track approaching the Mumbai harbour exclusion area from the
	// south-west: open water, then the warning buffer, then inside.
	track := []struct {
		lat, lon float64
	}{
		{18.80, 72.70},
		{18.86, 72.76},
		{18.90, 72.79},
		{18.93, 72.82},
	}

	for i, p := range track {
		event := PositionFixEvent{
			BoatID:    *boatID,
			Lat:       p.lat,
			Lon:       p.lon,
			AccuracyM: 8,
			Timestamp: time.Now().UTC(),
			Vessel: &VesselMeta{
				BoatID:        *boatID,
				LicenseNumber: "MH-FSH-2214",
				ContactNumber: "+91-9820012345",
			},
		}

		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: "stream:positions:ingest",
			Values: map[string]interface{}{
				"data": string(data),
			},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}

		fmt.Printf("published fix %d/%d id=%s lat=%.4f lon=%.4f\n",
			i+1, len(track), id, p.lat, p.lon)
		time.Sleep(500 * time.Millisecond)
	}
}

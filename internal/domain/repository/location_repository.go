package repository

import (
	"context"

	"github.com/vessel-monitor/internal/domain"
)

// LocationProvider supplies vessel position fixes for polling sessions.
type LocationProvider interface {
	// RequestPermission reports whether position access is granted for
	// the vessel, e.g. the owner has not opted out of tracking.
	RequestPermission(ctx context.Context, boatID string) (bool, error)

	// CurrentPosition returns the freshest fix for the vessel.
	CurrentPosition(ctx context.Context, boatID string) (*domain.PositionFix, error)
}

// LocationStore records the freshest fix per vessel for later polling.
type LocationStore interface {
	StorePosition(ctx context.Context, boatID string, fix domain.PositionFix) error
}

// LocationRepository combines providing and recording positions.
type LocationRepository interface {
	LocationProvider
	LocationStore
}

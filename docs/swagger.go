// Package docs Vessel Boundary Monitor API.
//
// Maritime boundary monitoring and violation alerting for fishing vessels.
// Ingests position fixes, evaluates them against geofenced zones
// (territorial waters, EEZ limits, restricted military areas, marine
// sanctuaries, seasonal bans) and raises graded alerts before and after a
// boundary is crossed.
//
// Main capabilities:
// - Position ingestion, pushed per fix, batched, or via Redis Streams
// - Per-vessel monitoring sessions with history and debounced alerting
// - Ad-hoc point checks against the zone registry
// - A queryable violation ledger with acknowledge/resolve lifecycle
// - Automatic reporting of emergency violations to the coast guard
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

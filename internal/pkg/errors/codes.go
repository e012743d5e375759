package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrZoneNotFound = New(
		"ZONE_NOT_FOUND",
		"Boundary zone not found",
		http.StatusNotFound,
	)

	ErrZoneConfigInvalid = New(
		"ZONE_CONFIG_INVALID",
		"Zone configuration failed validation",
		http.StatusUnprocessableEntity,
	)

	ErrViolationNotFound = New(
		"VIOLATION_NOT_FOUND",
		"Violation record not found",
		http.StatusNotFound,
	)

	ErrViolationResolved = New(
		"VIOLATION_ALREADY_RESOLVED",
		"Violation record is already resolved",
		http.StatusConflict,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Monitoring session not found",
		http.StatusNotFound,
	)

	ErrSessionExists = New(
		"SESSION_EXISTS",
		"Monitoring session already active for this vessel",
		http.StatusConflict,
	)

	ErrTooManySessions = New(
		"TOO_MANY_SESSIONS",
		"Maximum number of monitoring sessions reached",
		http.StatusServiceUnavailable,
	)

	ErrTrackingDenied = New(
		"TRACKING_DENIED",
		"Position tracking permission denied for this vessel",
		http.StatusForbidden,
	)

	ErrPositionUnavailable = New(
		"POSITION_UNAVAILABLE",
		"No position fix available for this vessel",
		http.StatusNotFound,
	)

	ErrReportingFailed = New(
		"REPORTING_FAILED",
		"Regulatory report delivery failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

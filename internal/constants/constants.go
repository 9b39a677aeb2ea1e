package constants

import "time"

const (
	// AvailabilityCacheTTL bounds how stale a cached availability search can
	// get even when invalidation is missed.
	AvailabilityCacheTTL = 5 * time.Minute

	// StalePendingReason is stamped on PENDING reservations the daily
	// maintenance run rejects because their stay window already started.
	StalePendingReason = "Reservation was not processed before its arrival date"

	// MaxRejectReasonLength caps the free-text reason staff can attach.
	MaxRejectReasonLength = 500
)

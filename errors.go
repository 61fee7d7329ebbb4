package portfolio

import "errors"

// Error taxonomy of the simulation pipeline. All failures returned by the
// package wrap one of these sentinels, so callers can branch with errors.Is
// while still getting a human-readable message.
var (
	// ErrInvalidAllocation reports a malformed or empty set of target weights.
	ErrInvalidAllocation = errors.New("invalid allocation")

	// ErrInsufficientData reports that the supplied price series have no
	// usable overlapping date range.
	ErrInsufficientData = errors.New("insufficient price data")

	// ErrInvalidSchedule reports a negative lump sum or contribution.
	ErrInvalidSchedule = errors.New("invalid contribution schedule")

	// ErrDegenerateSeries reports that a statistic is undefined for the
	// trajectory (zero length, zero variance, non-positive start).
	ErrDegenerateSeries = errors.New("degenerate series")

	// ErrInternalInvariant reports a violated internal contract, such as a
	// timeline date missing a price. This is a bug, not a user error.
	ErrInternalInvariant = errors.New("internal invariant violation")
)

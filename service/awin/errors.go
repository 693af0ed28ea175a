package awin

import (
	"errors"
	"fmt"
)

// Stage-level failures. Per-record upsert errors are never surfaced as
// errors; they are tallied in ImportResult.Failed and the batch continues.
var (
	// ErrUnauthorized means the caller does not hold the admin role.
	ErrUnauthorized = errors.New("unauthorized: admin access required")

	// ErrInvalidRequest means a required parameter is missing or out of range.
	ErrInvalidRequest = errors.New("invalid request")
)

// FeedUnavailableError means every acquisition variant failed. It keeps the
// last-seen HTTP status and body so operators can diagnose the partner side.
type FeedUnavailableError struct {
	AdvertiserID string
	LastError    string
}

func (e *FeedUnavailableError) Error() string {
	return fmt.Sprintf(
		"unable to fetch feed for advertiser %s: verify the advertiser ID, your access to the advertiser's program and that an active product feed exists (last error: %s)",
		e.AdvertiserID, e.LastError)
}

// ParseError means a whole-document parse failed outright, as opposed to the
// tolerant per-line/per-row skipping the parsers do for malformed entries.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s feed: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

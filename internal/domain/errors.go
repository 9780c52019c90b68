package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure: no infrastructure dependency.

var (
	// Catalog lookups
	ErrUnknownEmotion = errors.New("unknown emotion")
	ErrUnknownAction  = errors.New("unknown micro-action")
	ErrUnknownRegion  = errors.New("unknown crisis-resource region")
	ErrUnknownTag     = errors.New("unknown context tag")
	ErrUnknownBadge   = errors.New("unknown badge")

	// Local state
	ErrStateNotFound = errors.New("no stored state for key")

	// Remote sync
	ErrSyncDisabled      = errors.New("remote sync is disabled")
	ErrRemoteUnavailable = errors.New("remote sync backend is unreachable")
	ErrRemoteRejected    = errors.New("remote sync backend rejected the request")
	ErrNoIdentity        = errors.New("anonymous sync identity could not be established")
)

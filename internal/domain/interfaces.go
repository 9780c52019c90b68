package domain

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; application layer depends on them.

// StateStore is durable local key-value storage for JSON blobs.
// Implemented by infra/sqlite.DB.
type StateStore interface {
	// GetState returns the stored bytes, or ErrStateNotFound.
	GetState(key string) ([]byte, error)

	// PutState overwrites the value stored under key.
	PutState(key string, value []byte) error
}

// SyncDispatcher hands a finished check-in to the best-effort remote push.
// Dispatch must return immediately and never report failure to the caller.
type SyncDispatcher interface {
	Dispatch(checkIn CheckIn, progress Progress)
}

package repository

import "context"

// DocumentStore is the scenario audit store. Implementations must be safe for
// concurrent use; callers treat every method as fallible and never let a
// store failure block the response path.
type DocumentStore interface {
	// Create persists a document into the named collection and returns the
	// assigned identifier.
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	// ListCollections returns up to limit collection names.
	ListCollections(ctx context.Context, limit int) ([]string, error)
	// Health reports store reachability.
	Health(ctx context.Context) error
}

// Metrics abstracts domain metric recording.
type Metrics interface {
	RecordScenarioStored()
	RecordError(kind string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordLatency(op string, seconds float64)
}

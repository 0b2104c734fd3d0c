// Package kv provides the string-keyed backing store for learner data.
package kv

// Store is a flat mapping from string keys to string values.
// Implementations are synchronous; concurrent writers follow
// last-write-wins semantics.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any prior value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}

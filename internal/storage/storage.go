// Package storage is the durable key-value boundary the stores persist
// through: one JSON blob per key, scoped to a single user profile.
package storage

import "errors"

// ErrNoRecord is returned by Load when nothing has been saved under a key.
var ErrNoRecord = errors.New("storage: no record for key")

// Persistence saves and restores JSON-serializable values by key. Both
// operations are synchronous; callers are expected to treat a failed
// Load as "use the default" and a failed Save as a non-fatal warning.
type Persistence interface {
	// Load unmarshals the blob stored under key into out. It returns
	// ErrNoRecord when the key has never been saved, or a decode error
	// when the stored blob is unreadable.
	Load(key string, out any) error

	// Save marshals v and durably writes it under key, replacing any
	// previous blob.
	Save(key string, v any) error
}

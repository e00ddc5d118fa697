// Package store persists ledger collections as JSON documents addressed by a
// string key. The ledger core never sees this package; only the repository
// layer does.
package store

import "encoding/json"

// Port is the storage surface the application shell depends on. Each
// collection is saved independently under its own key; Restore is the single
// transactional, all-or-nothing write (backup restore).
type Port interface {
	// Load unmarshals the value under key into out. found is false when the
	// key has never been written.
	Load(key string, out any) (found bool, err error)
	Save(key string, value any) error
	Delete(key string) error
	// Snapshot returns the raw JSON under each requested key; keys never
	// written map to JSON null so a backup records their absence.
	Snapshot(keys []string) (map[string]json.RawMessage, error)
	// Restore overwrites every given key in one transaction. Either all
	// entries land or none do.
	Restore(entries map[string]json.RawMessage) error
}

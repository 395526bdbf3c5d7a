// Package kv is the persistence substrate for client-local blobs.
// Absence of a key is a normal state, not an error.
package kv

// Store holds named byte blobs.
type Store interface {
	// Get returns the blob and whether it exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

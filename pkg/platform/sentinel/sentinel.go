// Package sentinel holds the storage-level facts stores report. Services
// translate them into domain errors; nothing above the service layer sees them.
package sentinel

import "errors"

var (
	// ErrNotFound means no row exists for the key.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed means a uniqueness constraint already holds a row.
	ErrAlreadyUsed = errors.New("already used")
)

package models

import "encoding/json"

// FileRecord is one entry of the /fileget listing. The server returns a JSON
// object keyed by filename; the client preserves the server's key order, so
// records are kept in a slice rather than a Go map.
type FileRecord struct {
	// Name is the filename the record is stored under.
	Name string

	// Metadata is the untouched metadata value the server attached to the
	// filename. The client does not interpret it.
	Metadata json.RawMessage
}

// Package journal persists resolved star records to a local SQLite database
// so past resolutions can be listed, filtered, and audited.
package journal

import "time"

// Record is one resolved star as stored in the journal. SeedKind and
// SeedValue preserve what the user supplied; the remaining fields are the
// resolved properties at full precision.
type Record struct {
	ID           string
	CreatedAt    time.Time
	SeedKind     string
	SeedValue    string
	Mass         float64
	Temperature  float64
	Lifespan     float64
	SpectralType string
	Metallicity  float64
}

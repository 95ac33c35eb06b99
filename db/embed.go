// Package db provides the embedded demo catalog used for seeding.
package db

import _ "embed"

// SeedProducts contains the demo catalog records as a JSON array.
//
//go:embed seed/products.json
var SeedProducts []byte

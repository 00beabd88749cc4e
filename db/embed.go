// Package db embeds the database schema and the seed catalog.
package db

import _ "embed"

// Schema creates every table; it is safe to run on each start.
//
//go:embed migrations/001_schema.sql
var Schema string

// SeedCatalog is the demo catalog loaded by seed-db.
//
//go:embed seed/catalog.json
var SeedCatalog []byte

// Package sqlite provides a SQLite-backed implementation of driven.RunLedger.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Each pipeline run is stored in the runs
// table and its per-item outcomes in run_records.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.mocapprep/data/ledger.db
package sqlite

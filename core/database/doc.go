// Package database manages the optional connection to the journal database.
//
// The vault works without a database; when one is configured, uploads and
// removals are recorded in a transfer journal (see feature/vault/journal).
// MySQL is the production driver, SQLite is supported for tests and small
// single-node deployments.
package database

// Package journal records uploads and removals in an optional database table.
//
// The journal is an audit aid, not a source of truth: the bucket owns the
// state. When no database is configured the Recorder is nil and every call is
// a cheap no-op, so the vault service never branches on its presence.
package journal

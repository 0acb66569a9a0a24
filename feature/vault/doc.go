// Package vault manages user-uploaded files inside one logical folder of an
// S3-compatible bucket.
//
// The Service is the heart of the application: it derives a key prefix from a
// compound "bucket/folder" identifier and offers prefix-aware upload, listing,
// tagging, soft-delete and bucket lifecycle management on top of the
// core/storage client.
//
// # Soft delete
//
// Remove can retain a "tombstone" copy of the file under a dedicated prefix
// before deleting the original. A bucket lifecycle rule (see
// UpdateTombstoneLifecycle) expires tombstones after a grace period, giving
// operators a window to restore accidentally deleted files.
//
// # Lifecycle rules
//
// UpdateLifecycle performs a read-modify-write replacement of the bucket's
// whole lifecycle configuration with replace-by-id semantics. The backend has
// no compare-and-swap for this, so concurrent updates are last-write-wins;
// this is a known, documented limitation.
package vault

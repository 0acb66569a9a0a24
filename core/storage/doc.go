// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the vault needs: uploading, server-side copying, deleting,
// listing, tagging and bucket lifecycle management. This abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket.
//   - PutObject: Uploads content (with size and options).
//   - CopyObject: Server-side copy, used for tombstoning deleted files.
//   - RemoveObject: Deletes an object.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - GetBucketLifecycle / SetBucketLifecycle: Read and replace expiration rules.
//   - PutObjectTagging: Replaces the full tag set on an object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "files")
package storage

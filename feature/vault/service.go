package vault

import (
	"context"
	"io"
	"path"
	"strings"

	"file-vault/core/storage"
	"file-vault/feature/vault/journal"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/minio/minio-go/v7/pkg/tags"
	"go.uber.org/zap"
)

// TombstoneRuleID is the lifecycle rule that expires tombstoned files.
const TombstoneRuleID = "purge_tombstone"

// Service manages user files inside a single logical folder of a bucket.
//
// The service holds no mutable state after construction, so a single instance
// is safe for concurrent use. The backend operations themselves are not
// coordinated: see UpdateLifecycle for the one documented race.
type Service struct {
	client          storage.Client
	bucket          string
	prefix          string
	tombstonePrefix string
	region          string
	logger          *zap.Logger
	journal         *journal.Recorder
}

// New creates a vault service from the bucket identifier and connection
// settings. It validates configuration only; no network calls are made here.
//
// The identifier is lowercased and split on the first slash: "files/uploads"
// targets bucket "files" with every key placed under "uploads/". The
// tombstone prefix, when configured, lives under the same folder.
func New(client storage.Client, conn storage.Config, cfg Config, logger *zap.Logger, rec *journal.Recorder) (*Service, error) {
	identifier := strings.ToLower(strings.TrimSpace(cfg.BucketIdentifier))
	if identifier == "" {
		return nil, ErrInvalidParameters
	}

	bucket, prefix, _ := strings.Cut(identifier, "/")
	if bucket == "" {
		return nil, ErrInvalidParameters
	}

	// Static credentials must be complete unless the IAM profile is used.
	// access_key_id is checked first, matching the order callers expect.
	if !conn.UseIAMProfile {
		if conn.AccessKey == "" {
			return nil, &SettingMissingError{Field: "access_key_id"}
		}
		if conn.SecretKey == "" {
			return nil, &SettingMissingError{Field: "secret_access_key"}
		}
	}

	tombstone := cfg.TombstonePrefix
	if tombstone != "" && prefix != "" {
		tombstone = path.Join(prefix, tombstone)
	}

	return &Service{
		client:          client,
		bucket:          bucket,
		prefix:          prefix,
		tombstonePrefix: tombstone,
		region:          conn.Region,
		logger:          logger,
		journal:         rec,
	}, nil
}

// Bucket returns the resolved bucket name.
func (s *Service) Bucket() string {
	return s.bucket
}

// TombstonePrefix returns the resolved tombstone prefix ("" when disabled).
func (s *Service) TombstonePrefix() string {
	return s.tombstonePrefix
}

// ResolveKey maps a logical file path to its storage key by applying the
// folder prefix. Pure function; every object operation funnels through it.
func (s *Service) ResolveKey(logicalPath string) string {
	if s.prefix == "" {
		return logicalPath
	}
	return path.Join(s.prefix, logicalPath)
}

// Upload stores the reader's content under the resolved key and returns that
// key. Options are passed through to the backend untouched. No retries; any
// backend error propagates to the caller.
func (s *Service) Upload(ctx context.Context, reader io.Reader, size int64, logicalPath string, opts minio.PutObjectOptions) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	key := s.ResolveKey(logicalPath)
	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, opts); err != nil {
		return "", err
	}

	s.journal.RecordUpload(ctx, key)
	s.logger.Debug("uploaded file", zap.String("key", key))
	return key, nil
}

// Remove deletes a file, optionally retaining a tombstone copy first.
//
// The copy is issued strictly before the delete so a tombstone can never be
// lost to a delete racing ahead of it. Deleting a key that does not exist is
// treated as success; every other backend error propagates.
func (s *Service) Remove(ctx context.Context, fileName string, copyToTombstone bool) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	key := s.ResolveKey(fileName)
	tombstoned := false

	if copyToTombstone && s.tombstonePrefix != "" {
		dst := path.Join(s.tombstonePrefix, fileName)
		_, err := s.client.CopyObject(ctx,
			minio.CopyDestOptions{Bucket: s.bucket, Object: dst},
			minio.CopySrcOptions{Bucket: s.bucket, Object: key},
		)
		if err != nil {
			return err
		}
		tombstoned = true
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		// An already-absent key counts as a successful removal.
		if !storage.IsNotFound(err) {
			return err
		}
	}

	s.journal.RecordRemoval(ctx, key, tombstoned)
	s.logger.Debug("removed file", zap.String("key", key), zap.Bool("tombstoned", tombstoned))
	return nil
}

// UpdateLifecycle upserts a bucket expiration rule by id: the current rule set
// is fetched, any rule with the same id is dropped, and the whole configuration
// is written back with the new rule appended.
//
// Known race: the backend offers no partial-patch or compare-and-swap API, so
// concurrent updates are last-write-wins and can drop each other's rules.
func (s *Service) UpdateLifecycle(ctx context.Context, id string, days int, prefix string) error {
	var rules []lifecycle.Rule

	current, err := s.client.GetBucketLifecycle(ctx, s.bucket)
	if err != nil {
		// A bucket without lifecycle configuration starts from an empty set.
		if !storage.IsNoLifecycle(err) {
			return err
		}
	} else if current != nil {
		for _, rule := range current.Rules {
			if rule.ID != id {
				rules = append(rules, rule)
			}
		}
	}

	rule := lifecycle.Rule{
		ID:         id,
		Status:     "Enabled",
		Expiration: lifecycle.Expiration{Days: lifecycle.ExpirationDays(days)},
	}
	if prefix != "" {
		rule.RuleFilter = lifecycle.Filter{Prefix: prefix}
	}
	rules = append(rules, rule)

	config := lifecycle.NewConfiguration()
	config.Rules = rules

	if err := s.client.SetBucketLifecycle(ctx, s.bucket, config); err != nil {
		return err
	}

	s.logger.Info("lifecycle rule updated",
		zap.String("rule_id", id),
		zap.Int("days", days),
		zap.String("prefix", prefix),
	)
	return nil
}

// UpdateTombstoneLifecycle installs the rule that purges tombstoned files
// after the grace period. No-op (no backend call) when tombstoning is disabled.
func (s *Service) UpdateTombstoneLifecycle(ctx context.Context, gracePeriodDays int) error {
	if s.tombstonePrefix == "" {
		return nil
	}
	return s.UpdateLifecycle(ctx, TombstoneRuleID, gracePeriodDays, s.tombstonePrefix)
}

// List lazily enumerates every object under the folder prefix (or the whole
// bucket when no prefix is configured). Errors from the backend surface as
// ObjectInfo entries with a non-nil Err field.
func (s *Service) List(ctx context.Context) <-chan minio.ObjectInfo {
	return s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	})
}

// TagFile replaces the entire tag set on an object. The key is used as given;
// unlike Upload and Remove, no folder prefix is applied.
func (s *Service) TagFile(ctx context.Context, key string, tagSet map[string]string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	otags, err := tags.MapToObjectTags(tagSet)
	if err != nil {
		return err
	}
	return s.client.PutObjectTagging(ctx, s.bucket, key, otags, minio.PutObjectTaggingOptions{})
}

// ensureBucket creates the bucket when it does not exist yet. Check-then-create
// is not atomic; when a concurrent creator wins the race the resulting
// "already exists" outcome is swallowed.
func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	if err != nil && !storage.IsBucketExists(err) {
		return err
	}
	return nil
}

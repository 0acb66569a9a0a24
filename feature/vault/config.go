package vault

// Config holds configuration for the file vault.
type Config struct {
	// BucketIdentifier names the target bucket, optionally followed by a
	// folder path inside it (e.g. "files" or "files/uploads").
	BucketIdentifier string `mapstructure:"bucket" default:"files"`
	// TombstonePrefix is the folder where removed files are retained.
	// Empty disables tombstone copies entirely.
	TombstonePrefix string `mapstructure:"tombstone_prefix" default:""`
	// GracePeriodDays is how long tombstoned files are kept before the
	// bucket lifecycle rule expires them.
	GracePeriodDays int `mapstructure:"grace_period_days" default:"30"`
}

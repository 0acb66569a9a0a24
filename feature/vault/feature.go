package vault

import (
	"file-vault/core/storage"
	"file-vault/feature/vault/journal"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the vault feature. The db may be nil, in which case the
// transfer journal is disabled.
func NewFeature(client storage.Client, conn storage.Config, cfg Config, log *zap.Logger, db *gorm.DB) (*Feature, error) {
	rec := journal.NewRecorder(db, log)
	if err := rec.Migrate(); err != nil {
		return nil, err
	}

	svc, err := New(client, conn, cfg, log, rec)
	if err != nil {
		return nil, err
	}

	h := NewHandler(svc, cfg.GracePeriodDays)
	return &Feature{service: svc, handler: h}, nil
}

// Service exposes the underlying vault service (used by the CLI commands).
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "vault"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

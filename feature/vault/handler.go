package vault

import (
	"bytes"

	"file-vault/core/logger"
	"file-vault/core/utils"
	"file-vault/feature/vault/journal"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the file vault.
type Handler struct {
	service   *Service
	graceDays int
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, graceDays int) *Handler {
	return &Handler{service: service, graceDays: graceDays}
}

// RegisterRoutes registers the vault routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Get("/", h.HandleList)
	group.Get("/journal", h.HandleJournal)
	group.Put("/tags/*", h.HandleTagFile)
	group.Post("/*", h.HandleUpload)
	group.Delete("/*", h.HandleRemove)

	app.Put("/lifecycle/tombstone", h.HandleTombstoneLifecycle)
}

// HandleUpload stores a file under the vault's folder.
// @Summary Upload File
// @Description Uploads the request body (or multipart "file" field) under the given logical path.
// @Tags files
// @Accept octet-stream
// @Produce json
// @Param path path string true "Logical file path (e.g. 'avatars/a.png')"
// @Success 201 {object} map[string]string "Resolved storage key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{path} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	name := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	var key string
	var err error

	// Multipart uploads carry the content in the "file" field; everything else
	// is treated as a raw body upload.
	if fileHeader, fErr := c.FormFile("file"); fErr == nil {
		file, oErr := fileHeader.Open()
		if oErr != nil {
			l.Error("Failed to open multipart file", zap.Error(oErr))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": oErr.Error(),
			})
		}
		defer file.Close()

		opts := minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")}
		key, err = h.service.Upload(c.Context(), file, fileHeader.Size, name, opts)
	} else {
		body := c.Body()
		opts := minio.PutObjectOptions{ContentType: c.Get(fiber.HeaderContentType)}
		key, err = h.service.Upload(c.Context(), bytes.NewReader(body), int64(len(body)), name, opts)
	}

	if err != nil {
		l.Error("Upload failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandleRemove deletes a file, optionally keeping a tombstone copy.
// @Summary Remove File
// @Description Deletes the file at the given logical path. Pass tombstone=true to retain a copy under the tombstone prefix.
// @Tags files
// @Produce json
// @Param path path string true "Logical file path"
// @Param tombstone query bool false "Retain a tombstone copy before deleting"
// @Success 200 {object} map[string]string "Removal result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{path} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	name := c.Params("*")
	tombstone := utils.ToBool(c.Query("tombstone"))
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Remove(c.Context(), name, tombstone); err != nil {
		l.Error("Remove failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "removed", "key": h.service.ResolveKey(name)})
}

// HandleList enumerates the files under the vault's folder.
// @Summary List Files
// @Description Lists every object under the configured folder prefix.
// @Tags files
// @Produce json
// @Success 200 {array} map[string]interface{} "Object summaries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects := make([]fiber.Map, 0)
	for info := range h.service.List(c.Context()) {
		if info.Err != nil {
			l.Error("List failed", zap.Error(info.Err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": info.Err.Error(),
			})
		}
		objects = append(objects, fiber.Map{
			"key":           info.Key,
			"size":          info.Size,
			"last_modified": info.LastModified,
			"etag":          info.ETag,
		})
	}

	return c.JSON(objects)
}

// HandleTagFile replaces the tag set on an object.
// @Summary Tag File
// @Description Replaces the full tag set on the object at the given storage key. The key is used as-is; no folder prefix is applied.
// @Tags files
// @Accept json
// @Produce json
// @Param key path string true "Storage key (already resolved)"
// @Param tags body map[string]string true "Tag set"
// @Success 200 {object} map[string]string "Tagging result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/tags/{key} [put]
func (h *Handler) HandleTagFile(c *fiber.Ctx) error {
	key := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	var tagSet map[string]string
	if err := c.BodyParser(&tagSet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.TagFile(c.Context(), key, tagSet); err != nil {
		l.Error("Tagging failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "tagged", "key": key})
}

// HandleTombstoneLifecycle installs the tombstone purge rule.
// @Summary Update Tombstone Lifecycle
// @Description Installs the bucket lifecycle rule that expires tombstoned files after the grace period.
// @Tags lifecycle
// @Produce json
// @Param days query int false "Grace period in days (defaults to the configured value)"
// @Success 200 {object} map[string]interface{} "Lifecycle result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lifecycle/tombstone [put]
func (h *Handler) HandleTombstoneLifecycle(c *fiber.Ctx) error {
	days := utils.ToInt(c.Query("days"))
	if days <= 0 {
		days = h.graceDays
	}
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.UpdateTombstoneLifecycle(c.Context(), days); err != nil {
		l.Error("Lifecycle update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "applied",
		"days":   days,
	})
}

// HandleJournal returns the newest transfer journal entries.
// @Summary Transfer Journal
// @Description Returns recent uploads and removals recorded in the journal database. Empty when no database is configured.
// @Tags files
// @Produce json
// @Param limit query int false "Maximum entries to return (default 50)"
// @Success 200 {array} journal.TransferLog "Journal entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/journal [get]
func (h *Handler) HandleJournal(c *fiber.Ctx) error {
	limit := utils.ToInt(c.Query("limit"))
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.journal.Recent(c.Context(), limit)
	if err != nil {
		l.Error("Journal read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if entries == nil {
		entries = []journal.TransferLog{}
	}

	return c.JSON(entries)
}

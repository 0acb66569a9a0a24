package vault_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"file-vault/core/storage/mocks"
	"file-vault/feature/vault"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()

	svc, err := vault.New(client, validConn, vault.Config{
		BucketIdentifier: "files/uploads",
		TombstonePrefix:  "deleted",
	}, zap.NewNop(), nil)
	assert.NoError(t, err)

	app := fiber.New()
	vault.NewHandler(svc, 30).RegisterRoutes(app)
	return app
}

func TestHandleUpload(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "files").Return(true, nil)
	client.On("PutObject", mock.Anything, "files", "uploads/a.png", mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	app := newTestApp(t, client)

	req := httptest.NewRequest("POST", "/files/a.png", strings.NewReader("data"))
	req.Header.Set(fiber.HeaderContentType, "image/png")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "uploads/a.png", body["key"])
	client.AssertExpectations(t)
}

func TestHandleRemove(t *testing.T) {
	t.Run("WithTombstone", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(true, nil)
		client.On("CopyObject", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("RemoveObject", mock.Anything, "files", "uploads/a.png", mock.Anything).Return(nil)

		app := newTestApp(t, client)

		req := httptest.NewRequest("DELETE", "/files/a.png?tombstone=true", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		client.AssertExpectations(t)
	})

	t.Run("BackendErrorIs500", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "files").Return(true, nil)
		client.On("RemoveObject", mock.Anything, "files", "uploads/a.png", mock.Anything).
			Return(minio.ErrorResponse{Code: "AccessDenied"})

		app := newTestApp(t, client)

		req := httptest.NewRequest("DELETE", "/files/a.png", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHandleList(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "files", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Key: "uploads/a.png", Size: 4}
			close(ch)
			return ch
		})

	app := newTestApp(t, client)

	req := httptest.NewRequest("GET", "/files/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var objects []map[string]any
	assert.NoError(t, json.Unmarshal(raw, &objects))
	assert.Len(t, objects, 1)
	assert.Equal(t, "uploads/a.png", objects[0]["key"])
}

func TestHandleTagFile(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "files").Return(true, nil)
	client.On("PutObjectTagging", mock.Anything, "files", "uploads/a.png", mock.Anything, mock.Anything).
		Return(nil)

	app := newTestApp(t, client)

	req := httptest.NewRequest("PUT", "/files/tags/uploads/a.png", strings.NewReader(`{"owner":"alice"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandleTombstoneLifecycle(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetBucketLifecycle", mock.Anything, "files").
		Return(nil, minio.ErrorResponse{Code: "NoSuchLifecycleConfiguration"})
	client.On("SetBucketLifecycle", mock.Anything, "files", mock.Anything).Return(nil)

	app := newTestApp(t, client)

	req := httptest.NewRequest("PUT", "/lifecycle/tombstone?days=14", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(14), body["days"])
	client.AssertExpectations(t)
}

func TestHandleJournal(t *testing.T) {
	// Without a database the journal is empty, never an error.
	app := newTestApp(t, new(mocks.Client))

	req := httptest.NewRequest("GET", "/files/journal", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

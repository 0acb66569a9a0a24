package loader_test

import (
	"errors"
	"testing"

	"file-vault/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager(t *testing.T) {
	t.Run("LoadsEnabledFeatures", func(t *testing.T) {
		mgr := loader.NewManager()
		on := &fakeFeature{name: "on", enabled: true}
		off := &fakeFeature{name: "off", enabled: false}
		mgr.Register(on)
		mgr.Register(off)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("PropagatesLoadError", func(t *testing.T) {
		mgr := loader.NewManager()
		bad := &fakeFeature{name: "bad", enabled: true, loadErr: errors.New("boom")}
		mgr.Register(bad)

		err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad")
	})
}

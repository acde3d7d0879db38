package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daddeck/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 18090,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/daddeck/collection.bin",
			WishlistPath: "/tmp/daddeck/wishlist.bin",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Trade: structures.TradeConfig{
			Secret:  "a-sufficiently-long-secret",
			TTL:     24 * time.Hour,
			BaseURL: "http://localhost:18090",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ShortTradeSecret(t *testing.T) {
	c := validConfig()
	c.Trade.Secret = "too-short"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingWishlistPath(t *testing.T) {
	c := validConfig()
	c.Persistence.WishlistPath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

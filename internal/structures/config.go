package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	WishlistPath string        `yaml:"wishlistPath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type PacksConfig struct {
	StandardSize  int `yaml:"standardSize"`
	PremiumSize   int `yaml:"premiumSize"`
	MaxPerRequest int `yaml:"maxPerRequest"`
}

type TradeConfig struct {
	Secret          string        `yaml:"secret" validate:"required|minLen:16"`
	TTL             time.Duration `yaml:"ttl" validate:"required|min:1"`
	BaseURL         string        `yaml:"baseUrl" validate:"required"`
	CleanupInterval time.Duration `yaml:"cleanupInterval"`
}

type RateLimitConfig struct {
	Enabled bool              `yaml:"enabled"`
	Window  time.Duration     `yaml:"window"`
	Tiers   map[string]int    `yaml:"tiers"`
	Keys    map[string]string `yaml:"keys"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Packs       PacksConfig     `yaml:"packs"`
	Trade       TradeConfig     `yaml:"trade"`
	RateLimit   RateLimitConfig `yaml:"rateLimit"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}

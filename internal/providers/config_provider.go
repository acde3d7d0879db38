package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"daddeck/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "DADDECK_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "DADDECK_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "DADDECK_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DADDECK_CACHE_SIZE")
	viper.BindEnv("trade.secret", "DADDECK_TRADE_SECRET")
	viper.BindEnv("rateLimit.enabled", "DADDECK_RATELIMIT_ENABLED")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DadDeckCollectionServer"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

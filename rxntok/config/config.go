package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/chemfoundry/rxntok/rxntok"

	"github.com/spf13/viper"
)

// Config stores all configuration of the tokenizer library.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
}

// TokenizerConfig stores tokenizer related configurations.
type TokenizerConfig struct {
	VocabPath    string        `mapstructure:"vocabPath"`
	BatchWorkers int           `mapstructure:"batchWorkers"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig stores logging related configurations.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("tokenizer.vocabPath", internal.DefaultVocabPath)
	viper.SetDefault("tokenizer.batchWorkers", internal.DefaultBatchWorkers)
	viper.SetDefault("tokenizer.logging.level", "info")

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. tokenizer.vocabPath becomes TOKENIZER_VOCABPATH

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}

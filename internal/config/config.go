package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFile is loaded into the process environment when present in the
// working directory, before any setting is read.
const EnvFile = ".env"

type Config struct {
	LogLevel      string
	LogFile       string
	BackupDir     string
	MongodumpPath string

	S3Mirror S3MirrorConfig
	Telegram TelegramConfig

	// EnvFileLoaded records whether EnvFile existed and was applied, so the
	// caller can log the warning once the logger is up.
	EnvFileLoaded bool
}

// S3MirrorConfig enables a best-effort secondary upload when fully set.
type S3MirrorConfig struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string
}

func (c S3MirrorConfig) Enabled() bool {
	return c.Bucket != ""
}

// TelegramConfig enables a run-outcome notification when fully set.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// Load builds the settings from the environment. A ./.env file, when present,
// is applied first; everything else falls back to defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(EnvFile); err == nil {
		if err := godotenv.Load(EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
		}
		cfg.EnvFileLoaded = true
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("BACKUP_DIR", ".")
	v.SetDefault("MONGODUMP_PATH", "mongodump")

	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFile = v.GetString("LOG_FILE")
	cfg.BackupDir = v.GetString("BACKUP_DIR")
	cfg.MongodumpPath = v.GetString("MONGODUMP_PATH")

	cfg.S3Mirror = S3MirrorConfig{
		Region:    v.GetString("S3_MIRROR_REGION"),
		Bucket:    v.GetString("S3_MIRROR_BUCKET"),
		AccessKey: v.GetString("S3_MIRROR_ACCESS_KEY"),
		SecretKey: v.GetString("S3_MIRROR_SECRET_KEY"),
		Prefix:    v.GetString("S3_MIRROR_PREFIX"),
	}

	cfg.Telegram = TelegramConfig{
		BotToken: v.GetString("TELEGRAM_BOT_TOKEN"),
		ChatID:   v.GetString("TELEGRAM_CHAT_ID"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BackupDir == "" {
		return fmt.Errorf("BACKUP_DIR must not be empty")
	}
	if c.MongodumpPath == "" {
		return fmt.Errorf("MONGODUMP_PATH must not be empty")
	}

	if c.S3Mirror.Enabled() {
		if c.S3Mirror.Region == "" {
			return fmt.Errorf("S3_MIRROR_REGION is required when S3_MIRROR_BUCKET is set")
		}
		if c.S3Mirror.AccessKey == "" || c.S3Mirror.SecretKey == "" {
			return fmt.Errorf("S3_MIRROR_ACCESS_KEY and S3_MIRROR_SECRET_KEY are required when S3_MIRROR_BUCKET is set")
		}
	}

	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

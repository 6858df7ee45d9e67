package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Relay    RelayConfig
	Cache    CacheConfig
	OCR      OCRConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds the durable result cache settings. An empty URI
// disables the durable tier entirely.
type MongoDBConfig struct {
	URI      string
	Database string
}

// RelayConfig holds CORS-relay settings
type RelayConfig struct {
	BaseURL     string
	Timeout     time.Duration
	SourceDelay time.Duration
}

// CacheConfig holds TTLs for each cache tier
type CacheConfig struct {
	MemoryTTL  time.Duration
	DurableTTL time.Duration
}

// OCRConfig holds OCR engine settings. Engines with empty API keys are not
// registered; tesseract needs no key and is always available.
type OCRConfig struct {
	GeminiAPIKey  string
	OpenAIAPIKey  string
	DefaultEngine string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()
	bindEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "")
	viper.SetDefault("MongoDB.Database", "veso")
	viper.SetDefault("Relay.BaseURL", "") // empty selects the default relay
	viper.SetDefault("Relay.Timeout", 15*time.Second)
	viper.SetDefault("Relay.SourceDelay", 300*time.Millisecond)
	viper.SetDefault("Cache.MemoryTTL", 5*time.Minute)
	viper.SetDefault("Cache.DurableTTL", 30*24*time.Hour)
	viper.SetDefault("OCR.DefaultEngine", "")
	viper.SetDefault("LogLevel", "info")
}

// bindEnv maps the flat environment names used in deployment to the nested
// config keys.
func bindEnv() {
	_ = viper.BindEnv("Server.Port", "PORT")
	_ = viper.BindEnv("Server.AllowedHosts", "ALLOWED_HOSTS")
	_ = viper.BindEnv("MongoDB.URI", "MONGODB_URI")
	_ = viper.BindEnv("MongoDB.Database", "MONGODB_DATABASE")
	_ = viper.BindEnv("Relay.BaseURL", "RELAY_URL")
	_ = viper.BindEnv("OCR.GeminiAPIKey", "GEMINI_API_KEY")
	_ = viper.BindEnv("OCR.OpenAIAPIKey", "OPENAI_API_KEY")
	_ = viper.BindEnv("OCR.DefaultEngine", "OCR_ENGINE")
	_ = viper.BindEnv("LogLevel", "LOG_LEVEL")
}

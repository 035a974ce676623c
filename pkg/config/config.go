package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"WhaleEye/pkg/util"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeLocal  = "local"
	ModeRemote = "remote"

	QuotaMemory = "memory"
	QuotaRedis  = "redis"
)

type Config struct {
	Environment  string             `yaml:"environment" default:"dev"`
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Whale        WhaleConfig        `yaml:"whale"`
	News         NewsConfig         `yaml:"news"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	Quota        QuotaConfig        `yaml:"quota"`
	Events       EventsConfig       `yaml:"events"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	CORS            bool          `yaml:"cors" default:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console"`
	Output string `yaml:"output" default:"stdout"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

// WhaleConfig configures the Etherscan-backed transaction source.
// An empty API key selects the fixture source.
type WhaleConfig struct {
	EtherscanAPIKey string        `yaml:"etherscan_api_key"`
	BaseURL         string        `yaml:"base_url" default:"https://api.etherscan.io"`
	FetchLimit      int           `yaml:"fetch_limit" default:"10"`
	DisplayLimit    int           `yaml:"display_limit" default:"5"`
	Timeout         time.Duration `yaml:"timeout" default:"10s"`
}

// NewsConfig configures the NewsAPI-backed article source.
// An empty API key selects the fixture source.
type NewsConfig struct {
	NewsAPIKey   string        `yaml:"news_api_key"`
	BaseURL      string        `yaml:"base_url" default:"https://newsapi.org"`
	PageSize     int           `yaml:"page_size" default:"10"`
	ArticleLimit int           `yaml:"article_limit" default:"6"`
	Timeout      time.Duration `yaml:"timeout" default:"10s"`
}

type OrchestratorConfig struct {
	Mode          string        `yaml:"mode" default:"local"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout" default:"20s"`
	DefaultWallet string        `yaml:"default_wallet" default:"0xd8da6bf26964af9d7eed9e03e53415d37aa96045"`
}

// QuotaConfig bounds outbound provider calls. Limits are per window.
type QuotaConfig struct {
	Backend         string        `yaml:"backend" default:"memory"`
	EtherscanLimit  int           `yaml:"etherscan_limit" default:"5"`
	EtherscanWindow time.Duration `yaml:"etherscan_window" default:"1s"`
	NewsAPILimit    int           `yaml:"newsapi_limit" default:"100"`
	NewsAPIWindow   time.Duration `yaml:"newsapi_window" default:"24h"`
	Redis           RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" default:"localhost:6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix" default:"whaleeye:quota"`
}

type EventsConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic" default:"whaleeye.queries"`
	LogTopic     string        `yaml:"log_topic" default:"whaleeye.logs"`
	Compression  string        `yaml:"compression" default:"gzip"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"5s"`
	BatchTimeout time.Duration `yaml:"batch_timeout" default:"50ms"`
}

// Default returns a Config populated only from struct defaults.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// tags are static; a failure here is a programming error
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads a YAML configuration file over the defaults.
// A missing file is not an error: the service runs from defaults and environment alone.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML, then .env, then overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	// .env never overrides variables already present in the environment
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("ETHERSCAN_API_KEY"); v != "" {
		c.Whale.EtherscanAPIKey = v
	}
	if v := os.Getenv("ETHERSCAN_BASE_URL"); v != "" {
		c.Whale.BaseURL = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.News.NewsAPIKey = v
	}
	if v := os.Getenv("NEWS_API_BASE_URL"); v != "" {
		c.News.BaseURL = v
	}
	if v := os.Getenv("ORCHESTRATOR_MODE"); v != "" {
		c.Orchestrator.Mode = v
	}
	if v := os.Getenv("ORCHESTRATOR_BASE_URL"); v != "" {
		c.Orchestrator.BaseURL = v
	}
	if v := os.Getenv("QUOTA_BACKEND"); v != "" {
		c.Quota.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Quota.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Quota.Redis.Password = v
	}
	if v := os.Getenv("EVENTS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Events.Enabled = b
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Events.Topic = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	switch c.Orchestrator.Mode {
	case ModeLocal:
	case ModeRemote:
		if c.Orchestrator.BaseURL == "" {
			return fmt.Errorf("orchestrator.base_url is required in remote mode")
		}
	default:
		return fmt.Errorf("orchestrator.mode must be '%s' or '%s', got '%s'", ModeLocal, ModeRemote, c.Orchestrator.Mode)
	}
	if c.Quota.Backend != QuotaMemory && c.Quota.Backend != QuotaRedis {
		return fmt.Errorf("quota.backend must be '%s' or '%s', got '%s'", QuotaMemory, QuotaRedis, c.Quota.Backend)
	}
	if c.Whale.FetchLimit <= 0 || c.Whale.DisplayLimit <= 0 {
		return fmt.Errorf("whale.fetch_limit and whale.display_limit must be positive")
	}
	if c.News.PageSize <= 0 || c.News.ArticleLimit <= 0 {
		return fmt.Errorf("news.page_size and news.article_limit must be positive")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers cannot be empty when events are enabled")
	}
	return nil
}

// Live reports whether a real provider key is configured for each upstream.
func (c *Config) Live() (etherscan, newsapi bool) {
	return c.Whale.EtherscanAPIKey != "", c.News.NewsAPIKey != ""
}

package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment"` // "development" or "production"
	Server      ServerConfig   `toml:"server"`
	Logging     LoggingConfig  `toml:"logging"`
	Storage     StorageConfig  `toml:"storage"`
	Cache       CacheConfig    `toml:"cache"`
	Quotes      QuotesConfig   `toml:"quotes"`
	Yahoo       YahooConfig    `toml:"yahoo"`
	EODHD       EODHDConfig    `toml:"eodhd"`
	Analysis    AnalysisConfig `toml:"analysis"`
	LLM         LLMConfig      `toml:"llm"`
	Gemini      GeminiConfig   `toml:"gemini"`
	Claude      ClaudeConfig   `toml:"claude"`
}

type ServerConfig struct {
	Port           int      `toml:"port"`
	Host           string   `toml:"host"`
	AllowedOrigins []string `toml:"allowed_origins"` // CORS origins, "*" allows all
	RequestTimeout string   `toml:"request_timeout"` // Upper bound on a single API request
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Type   string       `toml:"type"` // "memory" (default) or "badger"
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup
}

// CacheConfig controls how long an analysis record is served without recomputation
type CacheConfig struct {
	Freshness string `toml:"freshness"` // Duration string (default: "5m")
}

// QuotesConfig selects and configures the quote provider
type QuotesConfig struct {
	Provider string   `toml:"provider"` // "script" (default), "yahoo" or "eodhd"
	Command  string   `toml:"command"`  // Executable for the script provider; the symbol is appended to Args
	Args     []string `toml:"args"`
	Timeout  string   `toml:"timeout"` // Per-fetch timeout (default: "30s")
}

type YahooConfig struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
	Timeout   string `toml:"timeout"`
}

type EODHDConfig struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"` // Requests per second
}

// AnalysisConfig controls the local analysis synthesizer
type AnalysisConfig struct {
	Profile string `toml:"profile"` // "standard" (default) or "enhanced"
	Seed    int64  `toml:"seed"`    // Random seed for synthesized figures, 0 seeds from the clock
}

// LLMProvider represents the hosted analysis provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
	// LLMProviderNone disables hosted analysis; every request is synthesized locally
	LLMProviderNone LLMProvider = "none"
)

type LLMConfig struct {
	Provider LLMProvider `toml:"provider"`
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Timeout     string  `toml:"timeout"`
	Temperature float32 `toml:"temperature"`
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Timeout     string  `toml:"timeout"`
	Temperature float32 `toml:"temperature"`
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:           5000,
			Host:           "localhost",
			AllowedOrigins: []string{"*"},
			RequestTimeout: "90s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Storage: StorageConfig{
			Type: "memory",
			Badger: BadgerConfig{
				Path: "./data/records",
			},
		},
		Cache: CacheConfig{
			Freshness: "5m",
		},
		Quotes: QuotesConfig{
			Provider: "script",
			Command:  "tickerlens-quote",
			Timeout:  "30s",
		},
		Yahoo: YahooConfig{
			BaseURL:   "https://query1.finance.yahoo.com",
			UserAgent: "Mozilla/5.0",
			Timeout:   "20s",
		},
		EODHD: EODHDConfig{
			BaseURL:   "https://eodhd.com/api",
			RateLimit: 10,
		},
		Analysis: AnalysisConfig{
			Profile: "standard",
		},
		LLM: LLMConfig{
			Provider: LLMProviderGemini,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash-exp",
			Timeout:     "45s",
			Temperature: 0.4,
		},
		Claude: ClaudeConfig{
			Model:       "claude-3-5-haiku-20241022",
			MaxTokens:   4096,
			Timeout:     "45s",
			Temperature: 0.4,
		},
	}
}

// LoadFromFiles loads configuration with priority: defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. CLI flags are applied afterwards by ApplyFlagOverrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TICKERLENS_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration (PORT kept for platform deployments)
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if port := os.Getenv("TICKERLENS_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("TICKERLENS_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if origins := os.Getenv("TICKERLENS_SERVER_ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = splitList(origins)
	}

	// Logging configuration
	if level := os.Getenv("TICKERLENS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("TICKERLENS_LOG_OUTPUT"); output != "" {
		config.Logging.Output = splitList(output)
	}

	// Storage and cache
	if storageType := os.Getenv("TICKERLENS_STORAGE_TYPE"); storageType != "" {
		config.Storage.Type = storageType
	}
	if badgerPath := os.Getenv("TICKERLENS_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if freshness := os.Getenv("TICKERLENS_CACHE_FRESHNESS"); freshness != "" {
		config.Cache.Freshness = freshness
	}

	// Quote provider
	if provider := os.Getenv("TICKERLENS_QUOTES_PROVIDER"); provider != "" {
		config.Quotes.Provider = provider
	}
	if command := os.Getenv("TICKERLENS_QUOTES_COMMAND"); command != "" {
		config.Quotes.Command = command
	}
	if timeout := os.Getenv("TICKERLENS_QUOTES_TIMEOUT"); timeout != "" {
		config.Quotes.Timeout = timeout
	}
	if apiKey := os.Getenv("TICKERLENS_EODHD_API_KEY"); apiKey != "" {
		config.EODHD.APIKey = apiKey
	}

	// Analysis
	if profile := os.Getenv("TICKERLENS_ANALYSIS_PROFILE"); profile != "" {
		config.Analysis.Profile = profile
	}
	if seed := os.Getenv("TICKERLENS_ANALYSIS_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.Analysis.Seed = s
		}
	}
	if provider := os.Getenv("TICKERLENS_LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = LLMProvider(strings.ToLower(provider))
	}

	// Gemini configuration (GEMINI_API_KEY is the provider's conventional name)
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("TICKERLENS_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("TICKERLENS_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if timeout := os.Getenv("TICKERLENS_GEMINI_TIMEOUT"); timeout != "" {
		config.Gemini.Timeout = timeout
	}

	// Claude configuration
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("TICKERLENS_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if model := os.Getenv("TICKERLENS_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}
	if timeout := os.Getenv("TICKERLENS_CLAUDE_TIMEOUT"); timeout != "" {
		config.Claude.Timeout = timeout
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ResolveAPIKey resolves an API key by name with environment variable priority.
// Resolution order: TICKERLENS_* env -> provider env -> config fallback -> error
func ResolveAPIKey(name string, configFallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		"gemini_api_key": {"TICKERLENS_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"claude_api_key": {"TICKERLENS_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"},
		"eodhd_api_key":  {"TICKERLENS_EODHD_API_KEY", "EODHD_API_KEY"},
	}

	for _, envVarName := range keyToEnvMapping[name] {
		if envValue := os.Getenv(envVarName); envValue != "" {
			return envValue, nil
		}
	}

	if configFallback != "" {
		return configFallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment or config", name)
}

// ParseDuration parses a config duration string, returning fallback when empty or invalid
func ParseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

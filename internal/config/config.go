package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	CompletionAddress string
	CompletionModel   string
	CompletionAPIKey  string
	CompletionTimeout time.Duration
	SessionSecret     string
	SessionTTL        time.Duration
	TokenStrategy     string
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultCompletionAddress = "https://api.x.ai/v1"
	defaultCompletionModel   = "grok-3"
	defaultCompletionTimeout = 30 * time.Second
	defaultSessionSecret     = "change-me-in-production"
	defaultSessionTTL        = 24 * time.Hour
	defaultShutdownTimeout   = 10 * time.Second
)

// Supported session token strategies.
const (
	TokenStrategyHMAC = "hmac"
	TokenStrategyJWT  = "jwt"
)

// Load parses configuration from flags and environment variables.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		CompletionAddress: getString(lookup, "COMPLETION_ADDRESS", defaultCompletionAddress),
		CompletionModel:   getString(lookup, "COMPLETION_MODEL", defaultCompletionModel),
		CompletionAPIKey:  getString(lookup, "XAI_API_KEY", ""),
		CompletionTimeout: getDuration(lookup, "COMPLETION_TIMEOUT", defaultCompletionTimeout),
		SessionSecret:     getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		TokenStrategy:     getString(lookup, "TOKEN_STRATEGY", TokenStrategyHMAC),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("solace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		completionTimeoutStr = cfg.CompletionTimeout.String()
		sessionTTLStr        = cfg.SessionTTL.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CompletionAddress, "r", cfg.CompletionAddress, "Completion API base URL")
	fs.StringVar(&cfg.CompletionModel, "model", cfg.CompletionModel, "Completion model name")
	fs.StringVar(&cfg.CompletionAPIKey, "api-key", cfg.CompletionAPIKey, "Completion API key")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Session token strategy (hmac or jwt)")
	fs.StringVar(&completionTimeoutStr, "completion-timeout", completionTimeoutStr, "Completion request timeout")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CompletionTimeout, err = time.ParseDuration(completionTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid completion timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		// Mounted secret files usually end with a newline.
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	// PORT is honored only when the listen address is not set explicitly.
	if v, ok := lookup("RUN_ADDRESS"); !ok || v == "" {
		addrFromFlag := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "a" {
				addrFromFlag = true
			}
		})
		if !addrFromFlag {
			if port, ok := lookup("PORT"); ok && port != "" {
				cfg.RunAddress = ":" + port
			}
		}
	}

	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = defaultCompletionTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenStrategy != TokenStrategyHMAC && cfg.TokenStrategy != TokenStrategyJWT {
		return nil, fmt.Errorf("unsupported token strategy: %q", cfg.TokenStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CompletionAPIKey == "" {
		return nil, fmt.Errorf("completion API key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

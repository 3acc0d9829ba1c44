package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

// Placeholder identifiers sent to Tavus unless overridden by REPLICA_ID and PERSONA_ID.
const (
	DefaultReplicaID = "YOUR_REPLICA_ID"
	DefaultPersonaID = "YOUR_PERSONA_ID"
)

type Config struct {
	ServerAddress string
	TavusBaseURL  string
	TavusAPIKey   string
	ReplicaID     string
	PersonaID     string
	LogLevel      string
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress: ":8080",
		TavusBaseURL:  "https://api.tavus.io",
		ReplicaID:     DefaultReplicaID,
		PersonaID:     DefaultPersonaID,
		LogLevel:      "info",
	}
}

// NewConfig builds the configuration from defaults, command line flags and
// the environment, in that order of precedence. A .env file in the working
// directory is loaded first if present.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&cfg.TavusBaseURL, "t", cfg.TavusBaseURL, "Tavus API base URL")
	flag.StringVar(&cfg.ReplicaID, "r", cfg.ReplicaID, "Tavus replica ID")
	flag.StringVar(&cfg.PersonaID, "p", cfg.PersonaID, "Tavus persona ID")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")

	flag.Parse()

	applyEnv(cfg)

	return cfg
}

// LoadFromEnv builds the configuration without touching command line flags.
// Used by the serverless entry point, where flags are owned by the platform.
func LoadFromEnv() *Config {
	_ = godotenv.Load()

	cfg := defaultConfig()
	applyEnv(cfg)

	return cfg
}

func applyEnv(cfg *Config) {
	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.ServerAddress = ":" + envPort
	}

	if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}

	if envBaseURL := os.Getenv("TAVUS_BASE_URL"); envBaseURL != "" {
		cfg.TavusBaseURL = envBaseURL
	}

	// An unset key is passed through as-is; Tavus rejects the call.
	cfg.TavusAPIKey = os.Getenv("TAVUS_API_KEY")

	if envReplicaID := os.Getenv("REPLICA_ID"); envReplicaID != "" {
		cfg.ReplicaID = envReplicaID
	}

	if envPersonaID := os.Getenv("PERSONA_ID"); envPersonaID != "" {
		cfg.PersonaID = envPersonaID
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}
}

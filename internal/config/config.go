package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr               string        `yaml:"addr"`
	JWTSecret          string        `yaml:"jwt_secret"`
	APITimeout         time.Duration `yaml:"timeout"`
	DatabasePath       string        `yaml:"database_path"`
	TokenDuration      time.Duration `yaml:"token_duration"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
}

// LoadConfig builds the configuration from environment variables (a local
// .env file is honored if present) and optionally overlays a YAML file.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:               getEnv("CORTEX_ADDR", ":8080"),
		JWTSecret:          getEnv("CORTEX_JWT_SECRET", "supersecretkey"),
		APITimeout:         15 * time.Second,
		DatabasePath:       getEnv("CORTEX_DATABASE_PATH", "cortex.db"),
		TokenDuration:      1 * time.Hour,
		CORSAllowedOrigins: splitCSV(getEnv("CORTEX_CORS_ALLOWED_ORIGINS", "*")),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}

	return out
}

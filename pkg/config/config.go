package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Values that ship as placeholders in .env.example. Running against these
// would silently talk to a project that does not exist, so Load rejects them.
var placeholders = map[string]bool{
	"":                  true,
	"your-project-id":   true,
	"your-api-key":      true,
	"your-bucket-name":  true,
	"changeme":          true,
}

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	DefaultTheme    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		DefaultTheme:    getEnv("THEME", "dark"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if placeholders[c.FirebaseProject] {
		return fmt.Errorf("FIREBASE_PROJECT_ID is not configured")
	}
	if placeholders[c.FirebaseApiKey] {
		return fmt.Errorf("FIREBASE_API_KEY is not configured")
	}
	if placeholders[c.StorageBucket] {
		return fmt.Errorf("STORAGE_BUCKET is not configured")
	}
	if c.DefaultTheme != "dark" && c.DefaultTheme != "light" {
		return fmt.Errorf("THEME must be dark or light, got %q", c.DefaultTheme)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

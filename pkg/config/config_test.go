package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setAll(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "dpmarketpro-test")
	t.Setenv("FIREBASE_API_KEY", "AIzaTestKey")
	t.Setenv("STORAGE_BUCKET", "dpmarketpro-test.appspot.com")
}

func TestLoad(t *testing.T) {
	setAll(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "dpmarketpro-test", cfg.FirebaseProject)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "dark", cfg.DefaultTheme)
}

func TestLoadRejectsMissingProject(t *testing.T) {
	setAll(t)
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoadRejectsPlaceholders(t *testing.T) {
	setAll(t)
	t.Setenv("FIREBASE_API_KEY", "your-api-key")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_API_KEY")
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	setAll(t)
	t.Setenv("THEME", "solarized")

	_, err := Load()
	assert.Error(t, err)
}

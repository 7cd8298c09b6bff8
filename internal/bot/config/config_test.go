package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.TelegramToken, "")
	assert.Equal(t, c.TelegramAPIBase, "https://api.telegram.org")
	assert.Equal(t, c.PollTimeout, 30*time.Second)
	assert.Equal(t, c.DatabaseDriver, "sqlite")
	assert.Equal(t, c.DatabaseDSN, "holidaybot.db")
	assert.Equal(t, c.HolidayAPIBase, "https://calendarific.com")
	assert.Equal(t, c.HolidayAPIKey, "")
	assert.Equal(t, c.CountryCode, "RU")
	assert.Equal(t, c.TranslateAPIBase, "http://127.0.0.1:5000")
	assert.Equal(t, c.TargetLanguage, "ru")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.TelegramAPIBase, "https://api.telegram.org")
	assert.Equal(t, c.PollTimeout, 30*time.Second)
	assert.Equal(t, c.DatabaseDriver, "sqlite")
	assert.Equal(t, c.DatabaseDSN, "holidaybot.db")
	assert.Equal(t, c.HolidayAPIBase, "https://calendarific.com")
	assert.Equal(t, c.CountryCode, "RU")
	assert.Equal(t, c.TargetLanguage, "ru")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

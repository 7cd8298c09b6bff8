// Package config handles configuration for the bot,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the holiday bot.
//
// Fields:
//   - TelegramToken: bot token issued by BotFather.
//   - TelegramAPIBase: Bot API host, overridable for local API servers and tests.
//   - PollTimeout: server-side long-poll wait for getUpdates.
//   - DatabaseDriver: "sqlite" or "postgres".
//   - DatabaseDSN: database file path (sqlite) or DSN (pgx).
//   - HolidayAPIBase / HolidayAPIKey: Calendarific endpoint and key.
//   - CountryCode: ISO 3166-1 country used for holiday lookups.
//   - TranslateAPIBase: LibreTranslate endpoint; empty disables translation.
//   - TargetLanguage: language code holiday names are translated into.
//   - RequestTimeout: per-request timeout for outbound HTTP calls.
type Config struct {
	TelegramToken    string
	TelegramAPIBase  string
	PollTimeout      time.Duration
	DatabaseDriver   string
	DatabaseDSN      string
	HolidayAPIBase   string
	HolidayAPIKey    string
	CountryCode      string
	TranslateAPIBase string
	TargetLanguage   string
	RequestTimeout   time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// The Telegram token and the holiday API key have no usable defaults and
// must be overridden.
func (c *Config) LoadDefaults() {
	c.TelegramToken = ""
	c.TelegramAPIBase = "https://api.telegram.org"
	c.PollTimeout = 30 * time.Second
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "holidaybot.db"
	c.HolidayAPIBase = "https://calendarific.com"
	c.HolidayAPIKey = ""
	c.CountryCode = "RU"
	c.TranslateAPIBase = "http://127.0.0.1:5000"
	c.TargetLanguage = "ru"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/flagx"
	"github.com/dmitrijs2005/holidaybot/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO (Data Transfer Object) used only for
// reading JSON configuration files. After unmarshalling, its fields are
// copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	TelegramToken    string         `json:"telegram_token"`
	TelegramAPIBase  string         `json:"telegram_api_base"`
	PollTimeout      timex.Duration `json:"poll_timeout"`
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	HolidayAPIBase   string         `json:"holiday_api_base"`
	HolidayAPIKey    string         `json:"holiday_api_key"`
	CountryCode      string         `json:"country_code"`
	TranslateAPIBase string         `json:"translate_api_base"`
	TargetLanguage   string         `json:"target_language"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The lookup order for the JSON file path is:
//
//	The -c or -config command-line flags.
//	If it is not set, no JSON file is loaded.
//
// If the file path is found, parseJson attempts to read and unmarshal it
// into a JsonConfig. The resulting values are copied into the target Config.
// If the file cannot be read or contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.TelegramToken = c.TelegramToken
	config.TelegramAPIBase = c.TelegramAPIBase
	config.PollTimeout = time.Duration(c.PollTimeout.Duration)
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.HolidayAPIBase = c.HolidayAPIBase
	config.HolidayAPIKey = c.HolidayAPIKey
	config.CountryCode = c.CountryCode
	config.TranslateAPIBase = c.TranslateAPIBase
	config.TargetLanguage = c.TargetLanguage
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}

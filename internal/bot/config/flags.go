package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-t string   Telegram bot token
//	-a string   Bot API base URL (e.g., "https://api.telegram.org")
//	-p int      long-poll timeout, seconds
//	-r string   database driver ("sqlite" or "postgres")
//	-d string   database DSN or file path
//	-b string   holiday API base URL
//	-k string   holiday API key
//	-n string   ISO country code for lookups
//	-e string   translation API base URL
//	-l string   target language code
//	-q int      outbound request timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with the -config JSON flag.
//   - Duration flags are accepted as integers in seconds and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-t", "-a", "-p", "-r", "-d", "-b", "-k", "-n", "-e", "-l", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.TelegramToken, "t", config.TelegramToken, "telegram bot token")
	fs.StringVar(&config.TelegramAPIBase, "a", config.TelegramAPIBase, "bot API base URL")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.HolidayAPIBase, "b", config.HolidayAPIBase, "holiday API base URL")
	fs.StringVar(&config.HolidayAPIKey, "k", config.HolidayAPIKey, "holiday API key")
	fs.StringVar(&config.CountryCode, "n", config.CountryCode, "country code")
	fs.StringVar(&config.TranslateAPIBase, "e", config.TranslateAPIBase, "translation API base URL")
	fs.StringVar(&config.TargetLanguage, "l", config.TargetLanguage, "target language code")

	pollTimeout := fs.Int("p", int(config.PollTimeout.Seconds()), "poll_timeout (in seconds)")
	requestTimeout := fs.Int("q", int(config.RequestTimeout.Seconds()), "request_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PollTimeout = time.Duration(*pollTimeout) * time.Second
	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

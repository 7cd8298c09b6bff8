package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	// Parsing a valid dd.mm.yyyy text and formatting it back must yield the
	// original text.
	valid := []string{
		"01.01.2024",
		"31.12.2025",
		"01.06.2025",
		"29.02.2024", // leap day
		"09.09.1999",
	}
	for _, text := range valid {
		t.Run(text, func(t *testing.T) {
			d, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, text, d.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"tomorrow",
		"1.6.2025",     // single-digit day/month
		"01/06/2025",   // wrong separator
		"2025-06-01",   // ISO shape
		"32.01.2025",   // day out of range
		"29.02.2025",   // not a leap year
		"01.13.2025",   // month out of range
		"01.06.25",     // two-digit year
		"01.06.2025 ",  // trailing garbage
		" 01.06.2025",  // leading garbage
		"01.06.2025хх", // suffix
	}
	for _, text := range invalid {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			require.Error(t, err)
		})
	}
}

func TestParse_Values(t *testing.T) {
	d, err := Parse("01.06.2025")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 1}, d)
}

func TestISO_RoundTrip(t *testing.T) {
	d := Date{Year: 2025, Month: time.June, Day: 1}
	assert.Equal(t, "2025-06-01", d.ISO())

	got, err := ParseISO(d.ISO())
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestParseISO_Invalid(t *testing.T) {
	_, err := ParseISO("01.06.2025")
	require.Error(t, err)
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.January, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 1}, FromTime(ts))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 2024, Month: time.January, Day: 1}.IsZero())
}

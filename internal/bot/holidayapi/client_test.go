package holidayapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/common"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() datex.Date {
	return datex.Date{Year: 2024, Month: time.January, Day: 1}
}

func TestHolidaysForDate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/holidays", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "secret", q.Get("api_key"))
		assert.Equal(t, "KZ", q.Get("country"))
		assert.Equal(t, "2024", q.Get("year"))
		assert.Equal(t, "1", q.Get("month"))
		assert.Equal(t, "1", q.Get("day"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"holidays":[{"name":"New Year"},{"name":"Hangover Day"}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	got, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.NoError(t, err)
	assert.Equal(t, []string{"New Year", "Hangover Day"}, got)
}

func TestHolidaysForDate_EmptyListIsNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"holidays":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	got, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHolidaysForDate_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong", time.Second)
	_, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.True(t, errors.Is(err, common.ErrLookupUnavailable))
}

func TestHolidaysForDate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	_, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.True(t, errors.Is(err, common.ErrLookupUnavailable))
}

func TestHolidaysForDate_TimeoutMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 20*time.Millisecond)
	_, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.True(t, errors.Is(err, common.ErrLookupUnavailable))
}

func TestHolidaysForDate_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // stopped on purpose

	c := NewClient(srv.URL, "secret", time.Second)
	_, err := c.HolidaysForDate(context.Background(), testDate(), "KZ")
	require.True(t, errors.Is(err, common.ErrLookupUnavailable))
}

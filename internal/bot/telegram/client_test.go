package telegram

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/bot/dialog"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetUpdates_ParsesResultAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/getUpdates", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("offset"))
		assert.Equal(t, "30", r.URL.Query().Get("timeout"))

		_, _ = w.Write([]byte(`{"ok":true,"result":[
			{"update_id":5,"message":{"message_id":1,"from":{"id":42,"username":"alice"},"chat":{"id":42},"text":"/start"}},
			{"update_id":6,"callback_query":{"id":"cb1","from":{"id":42},"message":{"message_id":2,"chat":{"id":42}},"data":"add_personal_holiday"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	updates, err := c.GetUpdates(context.Background(), 5, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "/start", updates[0].Message.Text)
	assert.Equal(t, "add_personal_holiday", updates[1].CallbackQuery.Data)
}

func TestGetUpdates_NotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	_, err := c.GetUpdates(context.Background(), 0, time.Second)
	require.Error(t, err)
}

func TestSend_TextWithMenuBecomesReplyKeyboard(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	err := c.Send(context.Background(), dialog.Instruction{
		ChatID: 42,
		Text:   "hi",
		Menu:   []string{"What holiday is it today?", "My personal calendar"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.ChatID)
	assert.Equal(t, "hi", got.Text)

	markup, err := json.Marshal(got.ReplyMarkup)
	require.NoError(t, err)
	var kb ReplyKeyboardMarkup
	require.NoError(t, json.Unmarshal(markup, &kb))
	require.Len(t, kb.Keyboard, 2)
	assert.True(t, kb.ResizeKeyboard)
	assert.Equal(t, "What holiday is it today?", kb.Keyboard[0][0].Text)
}

func TestSend_ChoicesBecomeInlineKeyboard(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	err := c.Send(context.Background(), dialog.Instruction{
		ChatID: 42,
		Text:   "your holidays",
		Choices: [][]dialog.Choice{
			{{Label: "❌ Birthday", Token: "delete_holiday_Birthday"}},
			{{Label: "➕ Add", Token: "add_personal_holiday"}, {Label: "🗑 Delete all", Token: "delete_all_holidays"}},
		},
	})
	require.NoError(t, err)

	markup, err := json.Marshal(got.ReplyMarkup)
	require.NoError(t, err)
	var kb InlineKeyboardMarkup
	require.NoError(t, json.Unmarshal(markup, &kb))
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "delete_holiday_Birthday", kb.InlineKeyboard[0][0].CallbackData)
	require.Len(t, kb.InlineKeyboard[1], 2)
}

func TestSend_APIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	err := c.Send(context.Background(), dialog.Instruction{ChatID: 1, Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestAnswerCallbackQuery(t *testing.T) {
	var got answerCallbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/answerCallbackQuery", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, testLogger())
	require.NoError(t, c.AnswerCallbackQuery(context.Background(), "cb1"))
	assert.Equal(t, "cb1", got.CallbackQueryID)
}

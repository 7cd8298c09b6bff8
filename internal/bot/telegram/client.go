// Package telegram is the transport adapter: it reads inbound updates from
// the Bot API by long polling and delivers the engine's presentation
// instructions as messages with reply or inline keyboards.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/bot/dialog"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	client *resty.Client
	logger logging.Logger
}

// NewClient builds a Bot API client. baseURL is the API host (normally
// "https://api.telegram.org"); token is the bot token. timeout bounds every
// request except long polls, which add the poll duration on top.
func NewClient(baseURL string, token string, timeout time.Duration, logger logging.Logger) *Client {
	c := resty.New().
		SetBaseURL(baseURL + "/bot" + token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, logger: logger.With("module", "telegram")}
}

// GetUpdates long-polls for updates with ids >= offset, waiting up to
// pollTimeout server-side.
func (c *Client) GetUpdates(ctx context.Context, offset int64, pollTimeout time.Duration) ([]Update, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"offset":  strconv.FormatInt(offset, 10),
			"timeout": strconv.Itoa(int(pollTimeout.Seconds())),
		}).
		Get("/getUpdates")
	if err != nil {
		return nil, fmt.Errorf("getUpdates: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("getUpdates: status %d", resp.StatusCode())
	}

	var ur updatesResponse
	if err := json.Unmarshal(resp.Body(), &ur); err != nil {
		return nil, fmt.Errorf("getUpdates: decode: %w", err)
	}
	if !ur.OK {
		return nil, fmt.Errorf("getUpdates: api not ok")
	}
	return ur.Result, nil
}

// Send implements dialog.Sender, mapping the instruction's Menu to a reply
// keyboard and its Choices to an inline keyboard.
func (c *Client) Send(ctx context.Context, in dialog.Instruction) error {
	req := sendMessageRequest{ChatID: in.ChatID, Text: in.Text}

	switch {
	case len(in.Menu) > 0:
		kb := make([][]KeyboardButton, 0, len(in.Menu))
		for _, label := range in.Menu {
			kb = append(kb, []KeyboardButton{{Text: label}})
		}
		req.ReplyMarkup = ReplyKeyboardMarkup{Keyboard: kb, ResizeKeyboard: true}

	case len(in.Choices) > 0:
		rows := make([][]InlineKeyboardButton, 0, len(in.Choices))
		for _, row := range in.Choices {
			btns := make([]InlineKeyboardButton, 0, len(row))
			for _, choice := range row {
				btns = append(btns, InlineKeyboardButton{Text: choice.Label, CallbackData: choice.Token})
			}
			rows = append(rows, btns)
		}
		req.ReplyMarkup = InlineKeyboardMarkup{InlineKeyboard: rows}
	}

	return c.call(ctx, "/sendMessage", &req)
}

// AnswerCallbackQuery acknowledges a button press so the client stops showing
// a progress indicator.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	return c.call(ctx, "/answerCallbackQuery", &answerCallbackRequest{CallbackQueryID: callbackID})
}

func (c *Client) call(ctx context.Context, path string, body any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%s: status %d", path, resp.StatusCode())
	}

	var ar apiResponse
	if err := json.Unmarshal(resp.Body(), &ar); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}
	if !ar.OK {
		return fmt.Errorf("%s: api not ok: %s", path, ar.Description)
	}
	return nil
}

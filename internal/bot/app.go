// Package bot initializes and runs the holiday bot application.
// It opens the store, wires the external API clients into the dialogue
// engine, handles graceful shutdown and drives the Telegram long-poll loop.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/holidaybot/internal/bot/config"
	"github.com/dmitrijs2005/holidaybot/internal/bot/dialog"
	"github.com/dmitrijs2005/holidaybot/internal/bot/holidayapi"
	"github.com/dmitrijs2005/holidaybot/internal/bot/store"
	"github.com/dmitrijs2005/holidaybot/internal/bot/telegram"
	"github.com/dmitrijs2005/holidaybot/internal/bot/translate"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Service
	poller *telegram.Poller
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	st, err := store.NewService(ctx, c.DatabaseDriver, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	lookup := holidayapi.NewClient(c.HolidayAPIBase, c.HolidayAPIKey, c.RequestTimeout)
	translator := translate.NewClient(c.TranslateAPIBase, c.TargetLanguage, c.RequestTimeout, logger)

	tg := telegram.NewClient(c.TelegramAPIBase, c.TelegramToken, c.RequestTimeout+c.PollTimeout, logger)
	engine := dialog.NewEngine(st, lookup, translator, tg, c.CountryCode, logger)
	poller := telegram.NewPoller(tg, engine, c.PollTimeout, logger)

	return &App{config: c, logger: logger, store: st, poller: poller}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run drives the long-poll loop until the context is cancelled or an OS
// signal arrives, then closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.poller.Run(ctx)
	})

	err := g.Wait()

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(ctx, "store close failed", "error", cerr.Error())
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

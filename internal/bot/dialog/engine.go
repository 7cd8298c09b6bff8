// Package dialog implements the per-conversation finite-state machine that
// sequences user turns: free holiday lookups, the two-step personal-holiday
// add flow, and per-entry / bulk deletion.
//
// Events for different conversations are processed concurrently; events for
// one conversation are serialized in arrival order by a per-session mutex
// held for the whole turn, so a second event cannot observe a half-applied
// state transition. All collaborator failures are recovered locally: a failed
// turn answers the affected conversation and never disturbs the others.
package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
	"github.com/dmitrijs2005/holidaybot/internal/logging"
	"github.com/google/uuid"
)

type Engine struct {
	store      Store
	lookup     Lookup
	translator Translator
	sender     Sender
	logger     logging.Logger

	countryCode string

	// now is a test seam for "today".
	now func() time.Time

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewEngine wires the engine with its collaborators. countryCode is used for
// every lookup.
func NewEngine(store Store, lookup Lookup, translator Translator, sender Sender, countryCode string, logger logging.Logger) *Engine {
	return &Engine{
		store:       store,
		lookup:      lookup,
		translator:  translator,
		sender:      sender,
		logger:      logger.With("module", "dialog"),
		countryCode: countryCode,
		now:         time.Now,
		sessions:    make(map[int64]*session),
	}
}

// session returns the state for a conversation identity, creating it lazily.
func (e *Engine) session(chatID int64) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[chatID]
	if !ok {
		s = &session{}
		e.sessions[chatID] = s
	}
	return s
}

// HandleEvent processes one inbound turn. It blocks while an earlier turn for
// the same conversation is still in flight. The returned error reports only
// transport (send) failures; store and provider failures are answered to the
// user and logged here.
func (e *Engine) HandleEvent(ctx context.Context, ev Event) error {
	s := e.session(ev.ChatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	log := e.logger.With("turn_id", uuid.NewString(), "chat_id", ev.ChatID, "user_id", ev.UserID)

	if ev.Kind == KindButton {
		return e.handleButton(ctx, s, ev, log)
	}
	return e.handleText(ctx, s, ev, log)
}

func (e *Engine) handleText(ctx context.Context, s *session, ev Event, log logging.Logger) error {
	// Commands abandon any flow in progress.
	switch ev.Text {
	case cmdStart:
		s.reset()
		if err := e.store.EnsureUser(ctx, ev.UserID, ev.Username); err != nil {
			log.Error(ctx, "ensure user failed", "error", err.Error())
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgStorageFailed, Menu: mainMenu()})
		}
		log.Info(ctx, "user started conversation", "username", ev.Username)
		return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgGreeting, Menu: mainMenu()})

	case btnToday:
		s.reset()
		today := datex.FromTime(e.now())
		log.Info(ctx, "today's holidays requested", "date", today.String())
		return e.presentLookup(ctx, ev.ChatID, today, msgHolidaysToday, log)

	case btnCalendar:
		s.reset()
		log.Info(ctx, "personal calendar requested")
		return e.presentCalendar(ctx, ev.ChatID, ev.UserID, msgCalendarHdr, log)
	}

	switch s.phase {
	case PhaseAwaitingLookupDate:
		date, err := datex.Parse(ev.Text)
		if err != nil {
			// Parse failure keeps the state; the user is re-prompted.
			log.Warn(ctx, "invalid lookup date", "input", ev.Text)
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgBadDate})
		}
		s.reset()
		log.Info(ctx, "lookup date received", "date", date.String())
		return e.presentLookup(ctx, ev.ChatID, date, msgHolidaysOn, log)

	case PhaseAwaitingNewEntryDate:
		date, err := datex.Parse(ev.Text)
		if err != nil {
			log.Warn(ctx, "invalid new entry date", "input", ev.Text)
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgBadDate})
		}
		s.pendingDate = date
		s.phase = PhaseAwaitingNewEntryName
		log.Debug(ctx, "phase changed", "phase", s.phase.String())
		log.Info(ctx, "new entry date received", "date", date.String())
		return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgAskName})

	case PhaseAwaitingNewEntryName:
		name := ev.Text
		date := s.pendingDate
		s.reset()
		if err := e.store.AddEntry(ctx, ev.UserID, name, date); err != nil {
			log.Error(ctx, "add entry failed", "error", err.Error())
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgStorageFailed})
		}
		log.Info(ctx, "personal holiday added", "name", name, "date", date.String())
		return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: fmt.Sprintf(msgEntryAdded, name, date.String())})
	}

	// Idle free text that matches no command: never route it into a stale
	// flow, just point back at the menu.
	log.Info(ctx, "unrecognized text", "input", ev.Text)
	return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgUnknown, Menu: mainMenu()})
}

func (e *Engine) handleButton(ctx context.Context, s *session, ev Event, log logging.Logger) error {
	switch {
	case ev.Token == tokenChooseDate:
		s.reset()
		s.phase = PhaseAwaitingLookupDate
		log.Debug(ctx, "phase changed", "phase", s.phase.String())
		log.Info(ctx, "date lookup flow started")
		return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgAskDate})

	case ev.Token == tokenAddHoliday:
		s.reset()
		s.phase = PhaseAwaitingNewEntryDate
		log.Debug(ctx, "phase changed", "phase", s.phase.String())
		log.Info(ctx, "add holiday flow started")
		return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgAskDate})

	case ev.Token == tokenDeleteAll:
		s.reset()
		n, err := e.store.DeleteAllEntries(ctx, ev.UserID)
		if err != nil {
			log.Error(ctx, "delete all entries failed", "error", err.Error())
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgStorageFailed})
		}
		log.Info(ctx, "all personal holidays deleted", "removed", n)
		if err := e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgCleared}); err != nil {
			return err
		}
		return e.presentCalendar(ctx, ev.ChatID, ev.UserID, msgCalendarHdr, log)

	case strings.HasPrefix(ev.Token, tokenDeletePrefx):
		s.reset()
		name := strings.TrimPrefix(ev.Token, tokenDeletePrefx)
		n, err := e.store.DeleteEntry(ctx, ev.UserID, name)
		if err != nil {
			log.Error(ctx, "delete entry failed", "error", err.Error())
			return e.send(ctx, Instruction{ChatID: ev.ChatID, Text: msgStorageFailed})
		}
		log.Info(ctx, "personal holiday deleted", "name", name, "removed", n)
		return e.presentCalendar(ctx, ev.ChatID, ev.UserID, msgEntryGone, log)
	}

	log.Warn(ctx, "unknown choice token", "token", ev.Token)
	return nil
}

// presentLookup fetches and renders the holidays for one date. header must
// contain a single %s verb for the formatted date.
func (e *Engine) presentLookup(ctx context.Context, chatID int64, date datex.Date, header string, log logging.Logger) error {
	names, err := e.lookup.HolidaysForDate(ctx, date, e.countryCode)
	if err != nil {
		// Unavailability is rendered with a fixed message, never with the
		// empty-result text.
		log.Warn(ctx, "holiday lookup unavailable", "error", err.Error())
		return e.send(ctx, Instruction{ChatID: chatID, Text: msgLookupFailed, Choices: chooseDateChoices()})
	}

	if len(names) == 0 {
		return e.send(ctx, Instruction{
			ChatID:  chatID,
			Text:    fmt.Sprintf(msgNoHolidays, date.String()),
			Choices: chooseDateChoices(),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, header, date.String())
	for _, name := range names {
		b.WriteString("🎉 " + e.translator.Translate(ctx, name) + "\n")
	}
	return e.send(ctx, Instruction{ChatID: chatID, Text: b.String(), Choices: chooseDateChoices()})
}

// presentCalendar renders the owner's personal calendar with per-entry delete
// affordances, or the empty state.
func (e *Engine) presentCalendar(ctx context.Context, chatID, ownerID int64, header string, log logging.Logger) error {
	entries, err := e.store.ListEntries(ctx, ownerID)
	if err != nil {
		log.Error(ctx, "list entries failed", "error", err.Error())
		return e.send(ctx, Instruction{ChatID: chatID, Text: msgStorageFailed})
	}

	if len(entries) == 0 {
		return e.send(ctx, Instruction{ChatID: chatID, Text: msgCalendarNil, Choices: emptyCalendarChoices()})
	}

	var b strings.Builder
	b.WriteString(header)
	for _, entry := range entries {
		b.WriteString(formatEntry(entry))
	}
	return e.send(ctx, Instruction{ChatID: chatID, Text: b.String(), Choices: calendarChoices(entries)})
}

func formatEntry(e models.HolidayEntry) string {
	return "🎉 " + e.Name + " — " + e.Date.String() + "\n"
}

func (e *Engine) send(ctx context.Context, in Instruction) error {
	return e.sender.Send(ctx, in)
}

package dialog

import (
	"context"

	"github.com/dmitrijs2005/holidaybot/internal/bot/models"
	"github.com/dmitrijs2005/holidaybot/internal/datex"
)

// EventKind distinguishes the two inbound event shapes the transport delivers.
type EventKind int

const (
	// KindText is a free-text message typed by the user.
	KindText EventKind = iota
	// KindButton is a press of a previously offered choice; Token carries the
	// choice token.
	KindButton
)

// Event is one inbound user turn, normalized by the transport adapter.
type Event struct {
	ChatID   int64
	UserID   int64
	Username string
	Kind     EventKind
	Text     string
	Token    string
}

// Choice is one offered button: a human label and the opaque token the
// transport sends back when it is pressed.
type Choice struct {
	Label string
	Token string
}

// Instruction is one outbound presentation instruction. Menu carries
// persistent reply-keyboard labels (one per row); Choices carries inline
// button rows attached to this message. Either may be empty.
type Instruction struct {
	ChatID  int64
	Text    string
	Menu    []string
	Choices [][]Choice
}

// Sender delivers presentation instructions to the user. Implemented by the
// transport adapter.
type Sender interface {
	Send(ctx context.Context, in Instruction) error
}

// Store is the per-user holiday store the engine drives. Implemented by
// store.Service.
type Store interface {
	EnsureUser(ctx context.Context, userID int64, username string) error
	ListEntries(ctx context.Context, ownerID int64) ([]models.HolidayEntry, error)
	AddEntry(ctx context.Context, ownerID int64, name string, date datex.Date) error
	DeleteEntry(ctx context.Context, ownerID int64, name string) (int64, error)
	DeleteAllEntries(ctx context.Context, ownerID int64) (int64, error)
}

// Lookup answers "what holidays are on this date". Implemented by
// holidayapi.Client.
type Lookup interface {
	HolidaysForDate(ctx context.Context, date datex.Date, countryCode string) ([]string, error)
}

// Translator translates presentation text best-effort; it never fails, it
// falls back to the input. Implemented by translate.Client.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

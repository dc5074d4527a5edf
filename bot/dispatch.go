package bot

import (
	"strconv"
	"strings"

	"github.com/tunegram/tunegram/telegram"
)

// EventKind is the classified type of an inbound webhook update. Using a
// tagged variant instead of raw callback strings keeps handling exhaustive
// in the switch below.
type EventKind int

const (
	Ignore EventKind = iota
	SearchQuery
	CommandStart
	CommandStats
	CommandUnknown
	CallbackSelect
	CallbackNext
	CallbackPrevious
	CallbackUnknown
)

// Event is one classified inbound update.
type Event struct {
	Kind       EventKind
	ChatID     int64
	Query      string // SearchQuery
	Index      int    // CallbackSelect
	CallbackID string // set for callback events, used to ack the press
}

// Classify maps a webhook update onto an Event. Updates missing the
// minimum required fields classify as Ignore.
func Classify(update *telegram.Update) Event {
	if update == nil {
		return Event{Kind: Ignore}
	}

	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.Message.Chat == nil {
			return Event{Kind: Ignore}
		}
		ev := Event{
			ChatID:     cb.Message.Chat.ID,
			CallbackID: cb.ID,
		}
		switch cb.Data {
		case "next":
			ev.Kind = CallbackNext
		case "prev":
			ev.Kind = CallbackPrevious
		default:
			if idx, err := strconv.Atoi(cb.Data); err == nil {
				ev.Kind = CallbackSelect
				ev.Index = idx
			} else {
				ev.Kind = CallbackUnknown
			}
		}
		return ev
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return Event{Kind: Ignore}
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Event{Kind: Ignore}
	}

	ev := Event{ChatID: msg.Chat.ID}

	if strings.HasPrefix(text, "/") {
		switch commandWord(text) {
		case "/start":
			ev.Kind = CommandStart
		case "/stats":
			ev.Kind = CommandStats
		default:
			ev.Kind = CommandUnknown
		}
		return ev
	}

	ev.Kind = SearchQuery
	ev.Query = text
	return ev
}

// commandWord extracts the leading slash command, stripping a "@BotName"
// suffix clients add in group chats. Matching stays case-sensitive.
func commandWord(text string) string {
	word := text
	if i := strings.IndexAny(word, " \n\t"); i >= 0 {
		word = word[:i]
	}
	if at := strings.IndexByte(word, '@'); at >= 0 {
		word = word[:at]
	}
	return word
}

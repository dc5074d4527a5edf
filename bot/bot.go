package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tunegram/tunegram/db"
	"github.com/tunegram/tunegram/models"
	"github.com/tunegram/tunegram/session"
	"github.com/tunegram/tunegram/telegram"
)

// Searcher looks up playable tracks for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Track, error)
}

// Notifier delivers replies back to a chat. Delivery is best effort; a
// failed send never rolls back session state.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) error
	SendAudio(ctx context.Context, chatID int64, url, title, performer string, keyboard *telegram.InlineKeyboardMarkup) error
	AnswerCallback(ctx context.Context, callbackQueryID string) error
}

type Config struct {
	// AdminChatID gates /stats. Zero means nobody is admin.
	AdminChatID int64
	// SelectMovesCursor makes a button selection also move the session
	// cursor, so a following "next" continues from the selected track.
	SelectMovesCursor bool
}

// Service is the navigation engine: it turns classified webhook events
// into session mutations and outbound notifications.
type Service struct {
	searcher Searcher
	notifier Notifier
	sessions *session.Store
	db       *db.DB
	cfg      Config
	cleaner  *labelCleaner
	logger   *slog.Logger
}

func NewService(searcher Searcher, notifier Notifier, sessions *session.Store, database *db.DB, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		searcher: searcher,
		notifier: notifier,
		sessions: sessions,
		db:       database,
		cfg:      cfg,
		cleaner:  newLabelCleaner(),
		logger:   logger,
	}
}

// HandleUpdate is the single entry point for one webhook update. Every
// failure mode recovers into a message or a silent drop; nothing here may
// take the process down.
func (s *Service) HandleUpdate(ctx context.Context, update *telegram.Update) {
	ev := Classify(update)

	switch ev.Kind {
	case Ignore:
		return
	case SearchQuery:
		s.recordChat(ev.ChatID)
		s.handleSearch(ctx, ev)
	case CommandStart:
		s.recordChat(ev.ChatID)
		s.send(ctx, ev.ChatID, welcomeText, nil)
	case CommandStats:
		s.recordChat(ev.ChatID)
		s.handleStats(ctx, ev)
	case CommandUnknown:
		s.recordChat(ev.ChatID)
		s.send(ctx, ev.ChatID, commandRejectionText, nil)
	case CallbackSelect:
		s.handleSelect(ctx, ev)
	case CallbackNext:
		s.handleAdvance(ctx, ev, +1)
	case CallbackPrevious:
		s.handleAdvance(ctx, ev, -1)
	case CallbackUnknown:
		// Unrecognized payloads are dropped without a reply; the press is
		// still acknowledged so the client spinner stops.
		s.ack(ctx, ev)
	}
}

func (s *Service) handleSearch(ctx context.Context, ev Event) {
	if err := s.db.IncrementSearches(); err != nil {
		s.logger.Warn("failed to count search", "error", err)
	}

	tracks, err := s.searcher.Search(ctx, ev.Query)
	if err != nil {
		// Provider failure degrades to the no-results outcome; any prior
		// session stays navigable.
		s.logger.Warn("search failed", "chat_id", ev.ChatID, "error", err)
		s.send(ctx, ev.ChatID, noResultsText, nil)
		return
	}
	if len(tracks) == 0 {
		s.send(ctx, ev.ChatID, noResultsText, nil)
		return
	}

	s.sessions.Put(ev.ChatID, tracks)
	s.send(ctx, ev.ChatID, resultsText(tracks), resultKeyboard(tracks, s.cleaner))
}

func (s *Service) handleSelect(ctx context.Context, ev Event) {
	track, err := s.sessions.Select(ev.ChatID, ev.Index, s.cfg.SelectMovesCursor)
	switch {
	case errors.Is(err, session.ErrNoSession):
		// Stale button press after restart or eviction: drop it.
		return
	case errors.Is(err, session.ErrIndexOutOfRange):
		s.ack(ctx, ev)
		return
	}

	s.ack(ctx, ev)
	s.deliver(ctx, ev.ChatID, track)
}

func (s *Service) handleAdvance(ctx context.Context, ev Event, direction int) {
	track, cursor, err := s.sessions.Advance(ev.ChatID, direction)
	if errors.Is(err, session.ErrNoSession) {
		return
	}

	s.logger.Debug("cursor moved", "chat_id", ev.ChatID, "cursor", cursor)
	s.ack(ctx, ev)
	s.deliver(ctx, ev.ChatID, track)
}

func (s *Service) handleStats(ctx context.Context, ev Event) {
	if s.cfg.AdminChatID == 0 || ev.ChatID != s.cfg.AdminChatID {
		s.send(ctx, ev.ChatID, notAllowedText, nil)
		return
	}

	chats, searches, err := s.db.Stats()
	if err != nil {
		s.logger.Error("failed to read stats", "error", err)
		s.send(ctx, ev.ChatID, statsUnavailableText, nil)
		return
	}

	s.send(ctx, ev.ChatID, statsText(chats, searches), nil)
}

func (s *Service) deliver(ctx context.Context, chatID int64, track models.Track) {
	if err := s.notifier.SendAudio(ctx, chatID, track.URL, track.Title, track.Artist, navKeyboard()); err != nil {
		s.logger.Warn("audio delivery failed", "chat_id", chatID, "error", err)
	}
}

func (s *Service) send(ctx context.Context, chatID int64, text string, keyboard *telegram.InlineKeyboardMarkup) {
	if err := s.notifier.SendMessage(ctx, chatID, text, keyboard); err != nil {
		s.logger.Warn("message delivery failed", "chat_id", chatID, "error", err)
	}
}

func (s *Service) ack(ctx context.Context, ev Event) {
	if ev.CallbackID == "" {
		return
	}
	if err := s.notifier.AnswerCallback(ctx, ev.CallbackID); err != nil {
		s.logger.Warn("callback ack failed", "chat_id", ev.ChatID, "error", err)
	}
}

func (s *Service) recordChat(chatID int64) {
	if err := s.db.RecordChat(chatID); err != nil {
		s.logger.Warn("failed to record chat", "chat_id", chatID, "error", err)
	}
}

package session

import (
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tunegram/tunegram/models"
)

var (
	// ErrNoSession is returned when a chat has no active browsing session,
	// e.g. a stale button press after a restart or an eviction.
	ErrNoSession = errors.New("session: no active session")

	// ErrIndexOutOfRange is returned when a selection index falls outside
	// the current result set.
	ErrIndexOutOfRange = errors.New("session: index out of range")
)

// Session holds one chat's active search results and browsing cursor.
// Results keep the provider's relevance order; Cursor is always a valid
// index into Results.
type Session struct {
	ChatID  int64
	Results []models.Track
	Cursor  int
}

// Store maps chat ids to their browsing sessions. It is bounded: least
// recently used sessions are evicted once capacity is reached, and an
// evicted session behaves exactly like one that never existed.
//
// The store mutex serializes every read-modify-write sequence, so two
// concurrent advances for the same chat land on distinct cursors. Nothing
// network-bound ever runs under the lock.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[int64, *Session]
}

func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = 1024
	}
	cache, err := lru.New[int64, *Session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{sessions: cache}, nil
}

// Put replaces any existing session for the chat with a fresh one at
// cursor 0. Callers must not put an empty result set; an empty search is a
// no-results outcome and leaves the store untouched.
func (s *Store) Put(chatID int64, results []models.Track) {
	if len(results) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Add(chatID, &Session{
		ChatID:  chatID,
		Results: results,
	})
}

// Get returns a snapshot of the chat's session.
func (s *Store) Get(chatID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Advance moves the cursor by direction (+1 next, -1 previous) with
// wrap-around and returns the track at the new cursor along with its
// index.
func (s *Store) Advance(chatID int64, direction int) (models.Track, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return models.Track{}, 0, ErrNoSession
	}

	n := len(sess.Results)
	sess.Cursor = ((sess.Cursor+direction)%n + n) % n
	return sess.Results[sess.Cursor], sess.Cursor, nil
}

// Select returns the track at index. When moveCursor is set, the cursor
// follows the selection so a subsequent Advance continues from there.
func (s *Store) Select(chatID int64, index int, moveCursor bool) (models.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return models.Track{}, ErrNoSession
	}

	if index < 0 || index >= len(sess.Results) {
		return models.Track{}, ErrIndexOutOfRange
	}

	if moveCursor {
		sess.Cursor = index
	}
	return sess.Results[index], nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

package state

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Draft is an in-progress song submission, one per chat.
type Draft struct {
	ChatID    int64     `json:"chat_id"`
	Username  string    `json:"username"`
	Stage     string    `json:"stage"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Language  string    `json:"language"`
	Lyrics    string    `json:"lyrics"`
	StartedAt time.Time `json:"started_at"`
}

const (
	StageTitle    = "awaiting_title"
	StageArtist   = "awaiting_artist"
	StageLanguage = "awaiting_language"
	StageLyrics   = "awaiting_lyrics"
)

// Store persists the draft list across restarts.
type Store interface {
	SaveDrafts(ctx context.Context, drafts []Draft) error
	LoadDrafts(ctx context.Context) ([]Draft, error)
}

// Manager keeps the drafts in memory and mirrors every mutation to the store.
type Manager struct {
	mu     sync.RWMutex
	drafts []Draft
	store  Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Init loads persisted drafts, so submissions survive a bot restart.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	drafts, err := m.store.LoadDrafts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load drafts: %w", err)
	}
	m.drafts = drafts
	return nil
}

// Get returns the draft for a chat, if one is in progress.
func (m *Manager) Get(chatID int64) (Draft, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, draft := range m.drafts {
		if draft.ChatID == chatID {
			return draft, true
		}
	}
	return Draft{}, false
}

// Begin starts a fresh draft for the chat, replacing any existing one.
func (m *Manager) Begin(ctx context.Context, chatID int64, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(chatID)
	m.drafts = append(m.drafts, Draft{
		ChatID:    chatID,
		Username:  username,
		Stage:     StageTitle,
		StartedAt: time.Now(),
	})
	return m.syncLocked(ctx)
}

// Set replaces the chat's draft with the given value.
func (m *Manager) Set(ctx context.Context, draft Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.drafts {
		if existing.ChatID == draft.ChatID {
			m.drafts[i] = draft
			return m.syncLocked(ctx)
		}
	}
	return fmt.Errorf("no draft in progress for chat %d", draft.ChatID)
}

// Remove discards the chat's draft. Removing a missing draft is fine.
func (m *Manager) Remove(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(chatID)
	return m.syncLocked(ctx)
}

// All returns a copy of every draft in progress.
func (m *Manager) All() []Draft {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Draft(nil), m.drafts...)
}

func (m *Manager) removeLocked(chatID int64) {
	result := m.drafts[:0]
	for _, draft := range m.drafts {
		if draft.ChatID != chatID {
			result = append(result, draft)
		}
	}
	m.drafts = result
}

func (m *Manager) syncLocked(ctx context.Context) error {
	if err := m.store.SaveDrafts(ctx, m.drafts); err != nil {
		return fmt.Errorf("failed to save drafts: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/kofidarko/nnwombot/internal/state"
	"github.com/kofidarko/nnwombot/internal/utils"
)

// Manager wraps the redis connection used for draft persistence, per-chat
// slide-format preferences and song view counters. It satisfies state.Store.
type Manager struct {
	client *redisClient.Client
}

func NewManager() *Manager {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load redis env %s.", err)
		os.Exit(1)
	}
	opt, _ := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	client := redisClient.NewClient(opt)

	return &Manager{client: client}
}

// SaveDrafts stores the whole draft list as one JSON value.
func (m *Manager) SaveDrafts(ctx context.Context, drafts []state.Draft) error {
	draftsJSON, err := json.Marshal(drafts)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, "drafts", draftsJSON, 0).Err()
}

// LoadDrafts retrieves the draft list; a missing key means no drafts.
func (m *Manager) LoadDrafts(ctx context.Context) ([]state.Draft, error) {
	data, err := m.client.Get(ctx, "drafts").Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return []state.Draft{}, nil
		}
		return nil, err
	}
	var drafts []state.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// SetFormat remembers a chat's preferred slide format.
func (m *Manager) SetFormat(ctx context.Context, chatID int64, format string) error {
	return m.client.Set(ctx, fmt.Sprintf("format:%d", chatID), format, 0).Err()
}

// GetFormat returns the chat's preferred slide format, or "" when none is set.
func (m *Manager) GetFormat(ctx context.Context, chatID int64) (string, error) {
	format, err := m.client.Get(ctx, fmt.Sprintf("format:%d", chatID)).Result()
	if err != nil {
		if err == redisClient.Nil {
			return "", nil
		}
		return "", err
	}
	return format, nil
}

// IncrementViews bumps the view counter for a song.
func (m *Manager) IncrementViews(ctx context.Context, songID int64) error {
	err := m.client.HIncrBy(ctx, "views", strconv.FormatInt(songID, 10), 1).Err()
	if err != nil {
		return fmt.Errorf("failed to increment views for song %d: %w", songID, err)
	}
	return nil
}

// GetViews retrieves all song view counters.
func (m *Manager) GetViews(ctx context.Context) (map[int64]int, error) {
	result := make(map[int64]int)
	raw, err := m.client.HGetAll(ctx, "views").Result()
	if err != nil {
		if err == redisClient.Nil {
			return result, nil
		}
		return nil, err
	}
	for songID, count := range raw {
		id, err := strconv.ParseInt(songID, 10, 64)
		if err != nil {
			continue
		}
		countInt, err := strconv.Atoi(count)
		if err != nil {
			continue // skip invalid counts
		}
		result[id] = countInt
	}
	return result, nil
}

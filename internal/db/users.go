package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// User is a registered bot user.
type User struct {
	ChatID   int64
	Username sql.NullString
	AddedAt  time.Time
}

// RegisterUser records the chat on first contact; later calls are no-ops.
func RegisterUser(update tgbotapi.Update) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message := update.Message
	username := sql.NullString{
		String: message.From.UserName,
		Valid:  message.From.UserName != "",
	}

	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM users WHERE chat_id = ?)`
	err := Database.QueryRowContext(ctx, checkQuery, message.Chat.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking user existence: %w", err)
	}

	if !exists {
		insertQuery := `INSERT INTO users (chat_id, username, added_at) VALUES (?, ?, ?)`
		_, err = Database.ExecContext(ctx, insertQuery, message.Chat.ID, username, time.Now())
		if err != nil {
			return fmt.Errorf("failed to insert new user: %w", err)
		}

		log.Printf("new user registered: chat_id %d, username %s", message.Chat.ID, username.String)
	}

	return nil
}

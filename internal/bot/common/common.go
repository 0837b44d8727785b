package common

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kofidarko/nnwombot/internal/bot"
)

const helpText = `nnwombot — worship song lyrics for projection

/search <text> — find a song by title or lyrics (ɛ, ɔ and ŋ match e, o and n)
/song <id> — show a song with slide and export options
/add — submit a new song to the catalog
/cancel — discard a submission in progress
/help — this message`

// GetCommandHandlers returns the handlers both bots share.
func GetCommandHandlers() map[string]func(b *bot.Bot, update tgbotapi.Update) error {
	return map[string]func(b *bot.Bot, update tgbotapi.Update) error{
		"help": helpHandler,
	}
}

// GetCallbackHandlers returns shared callback handlers.
func GetCallbackHandlers() map[string]func(b *bot.Bot, update tgbotapi.Update) error {
	return map[string]func(b *bot.Bot, update tgbotapi.Update) error{}
}

func helpHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID, helpText)
}

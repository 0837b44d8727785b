package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kofidarko/nnwombot/internal/bot"
	"github.com/kofidarko/nnwombot/internal/bot/common"
	"github.com/kofidarko/nnwombot/internal/db"
	"github.com/kofidarko/nnwombot/internal/logger"
	"github.com/kofidarko/nnwombot/internal/redis"
	"github.com/kofidarko/nnwombot/internal/state"
	"github.com/kofidarko/nnwombot/internal/utils"
)

type Handlers struct {
	admins map[string]bool
	cache  *redis.Manager
	drafts *state.Manager
}

func NewHandlers(adminUsernames []string, cache *redis.Manager, drafts *state.Manager) *Handlers {
	admins := make(map[string]bool)
	for _, username := range adminUsernames {
		admins[strings.TrimSpace(username)] = true
	}

	return &Handlers{admins: admins, cache: cache, drafts: drafts}
}

func (h *Handlers) unverifiedHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !h.admins[message.From.UserName] {
		return b.SendMessage(message.Chat.ID, "you are not an admin")
	}

	songs, err := db.ListUnverified()
	if err != nil {
		logger.Error(fmt.Sprintf("error listing unverified songs: %v", err))
		return b.SendMessage(message.Chat.ID, "could not load the review queue")
	}

	if len(songs) == 0 {
		return b.SendMessage(message.Chat.ID, "the review queue is empty")
	}

	var listing strings.Builder
	listing.WriteString("awaiting review:\n\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, song := range songs {
		submitter := "unknown"
		if song.AddedBy.Valid {
			submitter = "@" + song.AddedBy.String
		}
		fmt.Fprintf(&listing, "#%d %s\n   by %s, added %s\n\n",
			song.ID, db.FormatSongName(song), submitter, utils.FormatAccraTime(song.AddedAt))

		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("✅ verify #%d", song.ID), fmt.Sprintf("verify:%d", song.ID)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 reject #%d", song.ID), fmt.Sprintf("reject:%d", song.ID)),
		})
	}

	return b.SendMessageWithButtons(message.Chat.ID, listing.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *Handlers) verifyCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	if !h.admins[update.CallbackQuery.From.UserName] {
		return b.SendMessage(chatID, "you are not an admin")
	}

	id, err := parseID(update.CallbackQuery.Data)
	if err != nil {
		return err
	}

	if err := db.SetVerified(id); err != nil {
		logger.Error(fmt.Sprintf("error verifying song %d: %v", id, err))
		return b.SendMessage(chatID, fmt.Sprintf("could not verify #%d", id))
	}

	logger.Success(fmt.Sprintf("song #%d verified by @%s", id, update.CallbackQuery.From.UserName))
	return b.SendMessage(chatID, fmt.Sprintf("song #%d verified", id))
}

func (h *Handlers) rejectCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	if !h.admins[update.CallbackQuery.From.UserName] {
		return b.SendMessage(chatID, "you are not an admin")
	}

	id, err := parseID(update.CallbackQuery.Data)
	if err != nil {
		return err
	}

	if err := db.DeleteSong(id); err != nil {
		logger.Error(fmt.Sprintf("error rejecting song %d: %v", id, err))
		return b.SendMessage(chatID, fmt.Sprintf("could not reject #%d", id))
	}

	logger.Info(fmt.Sprintf("song #%d rejected by @%s", id, update.CallbackQuery.From.UserName))
	return b.SendMessage(chatID, fmt.Sprintf("song #%d rejected and removed", id))
}

func (h *Handlers) statsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !h.admins[message.From.UserName] {
		return b.SendMessage(message.Chat.ID, "you are not an admin")
	}

	views, err := h.cache.GetViews(context.Background())
	if err != nil {
		logger.Error(fmt.Sprintf("error loading view counters: %v", err))
		return b.SendMessage(message.Chat.ID, "could not load the stats")
	}

	if len(views) == 0 {
		return b.SendMessage(message.Chat.ID, "no songs have been viewed yet")
	}

	type entry struct {
		id    int64
		count int
	}
	var entries []entry
	for id, count := range views {
		entries = append(entries, entry{id, count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].count > entries[j].count })
	if len(entries) > 10 {
		entries = entries[:10]
	}

	var listing strings.Builder
	listing.WriteString("most viewed songs:\n\n")
	for i, e := range entries {
		name := fmt.Sprintf("#%d", e.id)
		if song, found, err := db.FindSongByID(e.id); err == nil && found {
			name = fmt.Sprintf("#%d %s", e.id, song.Title)
		}
		fmt.Fprintf(&listing, "%d. %s — %d views\n", i+1, name, e.count)
	}
	return b.SendMessage(message.Chat.ID, listing.String())
}

func (h *Handlers) draftsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !h.admins[message.From.UserName] {
		return b.SendMessage(message.Chat.ID, "you are not an admin")
	}

	drafts := h.drafts.All()
	if len(drafts) == 0 {
		return b.SendMessage(message.Chat.ID, "no submissions in progress")
	}

	draftsJSON, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return b.SendMessage(message.Chat.ID, "failed to render drafts")
	}
	return b.SendMessageWithMarkdown(message.Chat.ID, "```json\n"+string(draftsJSON)+"\n```", false)
}

func parseID(data string) (int64, error) {
	_, raw, _ := strings.Cut(data, ":")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed callback data: %q", data)
	}
	return id, nil
}

func SetupHandlers(adminBot *bot.Bot, cache *redis.Manager, drafts *state.Manager, adminUsernames []string) {
	handlers := NewHandlers(adminUsernames, cache, drafts)

	commandHandlers := common.GetCommandHandlers()
	commandHandlers["unverified"] = handlers.unverifiedHandler
	commandHandlers["stats"] = handlers.statsHandler
	commandHandlers["drafts"] = handlers.draftsHandler

	callbackHandlers := common.GetCallbackHandlers()
	callbackHandlers["verify"] = handlers.verifyCallback
	callbackHandlers["reject"] = handlers.rejectCallback

	go adminBot.Start(commandHandlers, nil, callbackHandlers)
}

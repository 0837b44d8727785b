package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kofidarko/nnwombot/internal/bot"
	"github.com/kofidarko/nnwombot/internal/bot/common"
	"github.com/kofidarko/nnwombot/internal/db"
	"github.com/kofidarko/nnwombot/internal/logger"
	"github.com/kofidarko/nnwombot/internal/lyrics"
	"github.com/kofidarko/nnwombot/internal/redis"
	"github.com/kofidarko/nnwombot/internal/state"
)

// slideDivider separates slides inside one chat message.
const slideDivider = "\n\n· · ·\n\n"

var languageOptions = []string{"Twi", "English", "Ga", "Ewe", "Fante"}

type Handlers struct {
	drafts *state.Manager
	cache  *redis.Manager
}

func NewHandlers(drafts *state.Manager, cache *redis.Manager) *Handlers {
	return &Handlers{drafts: drafts, cache: cache}
}

func (h *Handlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	if err := db.RegisterUser(update); err != nil {
		logger.Error(fmt.Sprintf("error registering user: %v", err))
	}

	return b.SendMessage(update.Message.Chat.ID,
		"akwaaba! send me part of a song title or a line of lyrics and i'll search the catalog.\n\n"+
			"typing plain e, o and n finds songs written with ɛ, ɔ and ŋ.\n\n"+
			"/help shows everything i can do")
}

func (h *Handlers) searchHandler(b *bot.Bot, update tgbotapi.Update) error {
	query := strings.TrimSpace(update.Message.CommandArguments())
	if query == "" {
		return b.SendMessage(update.Message.Chat.ID, "what should i search for? try /search waye me yie")
	}
	return h.search(b, update.Message.Chat.ID, query)
}

func (h *Handlers) search(b *bot.Bot, chatID int64, query string) error {
	results, err := db.SearchSongs(query)
	if err != nil {
		logger.Error(fmt.Sprintf("search failed for %q: %v", query, err))
		return b.SendMessage(chatID, "search is not working right now, please try again in a bit")
	}

	if len(results) == 0 {
		return b.SendMessage(chatID, fmt.Sprintf("nothing found for %q. /add it if you have the words!", query))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, song := range results {
		if len(rows) >= 10 {
			break
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(db.FormatSongName(song), fmt.Sprintf("song:%d", song.ID)),
		})
	}

	message := fmt.Sprintf("found %d song(s):", len(results))
	if len(results) > 10 {
		message = fmt.Sprintf("found %d songs (showing the first 10):", len(results))
	}
	return b.SendMessageWithButtons(chatID, message, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *Handlers) songHandler(b *bot.Bot, update tgbotapi.Update) error {
	arg := strings.TrimSpace(update.Message.CommandArguments())
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return b.SendMessage(update.Message.Chat.ID, "i need a song number, like /song 12")
	}
	return h.showSong(b, update.Message.Chat.ID, id)
}

func (h *Handlers) showSong(b *bot.Bot, chatID int64, songID int64) error {
	song, found, err := db.FindSongByID(songID)
	if err != nil {
		logger.Error(fmt.Sprintf("error fetching song %d: %v", songID, err))
		return b.SendMessage(chatID, "something went wrong fetching that song")
	}
	if !found {
		return b.SendMessage(chatID, "sorry, there is no song with that id")
	}

	if err := h.cache.IncrementViews(context.Background(), songID); err != nil {
		logger.Error(fmt.Sprintf("error counting view for song %d: %v", songID, err))
	}

	status := "awaiting review ⏳"
	if song.Verified {
		status = "verified ✅"
	}

	card := fmt.Sprintf("#%d %s\nartist: %s\nlanguage: %s\nstatus: %s",
		song.ID, song.Title, song.ToLyrics().ArtistOrUnknown(), song.Language, status)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("2-line slides", fmt.Sprintf("slides:%d:%s", song.ID, lyrics.FormatTwoLines)),
			tgbotapi.NewInlineKeyboardButtonData("4-line slides", fmt.Sprintf("slides:%d:%s", song.ID, lyrics.FormatFourLines)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("full verses", fmt.Sprintf("slides:%d:%s", song.ID, lyrics.FormatFullVerse)),
			tgbotapi.NewInlineKeyboardButtonData("sections", fmt.Sprintf("sections:%d", song.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("projection text", fmt.Sprintf("text:%d", song.ID)),
			tgbotapi.NewInlineKeyboardButtonData("openlyrics xml", fmt.Sprintf("xml:%d", song.ID)),
		),
	)

	return b.SendMessageWithButtons(chatID, card, keyboard)
}

func (h *Handlers) songCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	id, err := callbackID(update.CallbackQuery.Data, 1)
	if err != nil {
		return err
	}
	return h.showSong(b, chatID, id)
}

func (h *Handlers) slidesCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	parts := strings.Split(update.CallbackQuery.Data, ":")
	if len(parts) != 3 {
		return fmt.Errorf("malformed slides callback: %q", update.CallbackQuery.Data)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return fmt.Errorf("malformed slides callback: %q", update.CallbackQuery.Data)
	}
	format := lyrics.ParseSlideFormat(parts[2])

	if err := h.cache.SetFormat(context.Background(), chatID, string(format)); err != nil {
		logger.Error(fmt.Sprintf("error saving format preference: %v", err))
	}

	song, found, err := db.FindSongByID(id)
	if err != nil || !found {
		return b.SendMessage(chatID, "sorry, i could not load that song")
	}

	slides := lyrics.SplitIntoSlides(song.Lyrics, format)
	if len(slides) == 0 {
		return b.SendMessage(chatID, "this song has no lyrics yet")
	}

	header := fmt.Sprintf("%s — %d slide(s)\n\n", song.Title, len(slides))
	return b.SendMessage(chatID, header+strings.Join(slides, slideDivider))
}

func (h *Handlers) textCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	id, err := callbackID(update.CallbackQuery.Data, 1)
	if err != nil {
		return err
	}

	song, found, err := db.FindSongByID(id)
	if err != nil || !found {
		return b.SendMessage(chatID, "sorry, i could not load that song")
	}

	preferred, err := h.cache.GetFormat(context.Background(), chatID)
	if err != nil {
		logger.Error(fmt.Sprintf("error reading format preference: %v", err))
	}

	payload := lyrics.FormatForProjection(song.ToLyrics(), lyrics.ParseSlideFormat(preferred))
	return b.SendMessageWithMarkdown(chatID, "```\n"+payload+"\n```", true)
}

func (h *Handlers) xmlCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	id, err := callbackID(update.CallbackQuery.Data, 1)
	if err != nil {
		return err
	}

	song, found, err := db.FindSongByID(id)
	if err != nil || !found {
		return b.SendMessage(chatID, "sorry, i could not load that song")
	}

	document := lyrics.GenerateOpenLyricsXML(song.ToLyrics())
	filename := fmt.Sprintf("nnwom-%d.xml", song.ID)
	return b.SendDocument(chatID, filename, []byte(document),
		"import this file in your projection software")
}

func (h *Handlers) sectionsCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	id, err := callbackID(update.CallbackQuery.Data, 1)
	if err != nil {
		return err
	}

	song, found, err := db.FindSongByID(id)
	if err != nil || !found {
		return b.SendMessage(chatID, "sorry, i could not load that song")
	}

	sections := lyrics.ParseSections(song.Lyrics)
	if len(sections) == 0 {
		return b.SendMessage(chatID, "this song has no lyrics to outline")
	}

	var overview strings.Builder
	fmt.Fprintf(&overview, "%s — structure:\n\n", song.Title)
	for i, section := range sections {
		firstLine, _, _ := strings.Cut(section.Content, "\n")
		fmt.Fprintf(&overview, "%d. %s — %s\n", i+1, section.Label, firstLine)
	}
	return b.SendMessage(chatID, overview.String())
}

func (h *Handlers) addHandler(b *bot.Bot, update tgbotapi.Update) error {
	if err := h.drafts.Begin(context.Background(), update.Message.Chat.ID, update.Message.From.UserName); err != nil {
		logger.Error(fmt.Sprintf("error starting draft: %v", err))
	}
	return b.SendMessage(update.Message.Chat.ID, "let's add a song! what is the title?")
}

func (h *Handlers) cancelHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	if _, ok := h.drafts.Get(chatID); !ok {
		return b.SendMessage(chatID, "there is nothing to cancel")
	}
	if err := h.drafts.Remove(context.Background(), chatID); err != nil {
		logger.Error(fmt.Sprintf("error removing draft: %v", err))
	}
	return b.SendMessage(chatID, "ok, submission discarded")
}

func (h *Handlers) skipHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	draft, ok := h.drafts.Get(chatID)
	if !ok || draft.Stage != state.StageArtist {
		return b.SendMessage(chatID, "nothing to skip right now")
	}

	draft.Artist = ""
	draft.Stage = state.StageLanguage
	if err := h.drafts.Set(context.Background(), draft); err != nil {
		return err
	}
	return h.askLanguage(b, chatID)
}

func (h *Handlers) askLanguage(b *bot.Bot, chatID int64) error {
	var row []tgbotapi.InlineKeyboardButton
	for _, language := range languageOptions {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(language, "lang:"+language))
	}
	return b.SendMessageWithButtons(chatID, "what language is it in? pick one or type your own",
		tgbotapi.NewInlineKeyboardMarkup(row))
}

func (h *Handlers) langCallback(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	_, language, _ := strings.Cut(update.CallbackQuery.Data, ":")

	draft, ok := h.drafts.Get(chatID)
	if !ok || draft.Stage != state.StageLanguage {
		return b.SendMessage(chatID, "that button is no longer active")
	}

	draft.Language = language
	draft.Stage = state.StageLyrics
	if err := h.drafts.Set(context.Background(), draft); err != nil {
		return err
	}
	return h.askLyrics(b, chatID)
}

func (h *Handlers) askLyrics(b *bot.Bot, chatID int64) error {
	return b.SendMessage(chatID,
		"now send the full lyrics in one message.\n\n"+
			"separate verses with a blank line. markers like [Chorus] or [Verse 2] are welcome")
}

// draftInput advances the submission conversation one stage per message.
func (h *Handlers) draftInput(b *bot.Bot, update tgbotapi.Update, draft state.Draft) error {
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	ctx := context.Background()

	switch draft.Stage {
	case state.StageTitle:
		if text == "" {
			return b.SendMessage(chatID, "the title cannot be empty")
		}
		draft.Title = text
		draft.Stage = state.StageArtist
		if err := h.drafts.Set(ctx, draft); err != nil {
			return err
		}
		return b.SendMessage(chatID, "who wrote or performs it? (/skip if unknown)")

	case state.StageArtist:
		draft.Artist = text
		draft.Stage = state.StageLanguage
		if err := h.drafts.Set(ctx, draft); err != nil {
			return err
		}
		return h.askLanguage(b, chatID)

	case state.StageLanguage:
		if text == "" {
			return h.askLanguage(b, chatID)
		}
		draft.Language = text
		draft.Stage = state.StageLyrics
		if err := h.drafts.Set(ctx, draft); err != nil {
			return err
		}
		return h.askLyrics(b, chatID)

	case state.StageLyrics:
		if text == "" {
			return b.SendMessage(chatID, "i need the lyrics as text")
		}
		draft.Lyrics = text
		return h.submitDraft(b, chatID, draft)
	}

	return fmt.Errorf("draft for chat %d in unknown stage %q", chatID, draft.Stage)
}

func (h *Handlers) submitDraft(b *bot.Bot, chatID int64, draft state.Draft) error {
	id, err := db.InsertSong(draft.Title, draft.Artist, draft.Language, draft.Lyrics, draft.Username)
	if err != nil {
		logger.Error(fmt.Sprintf("error inserting song %q: %v", draft.Title, err))
		return b.SendMessage(chatID, "saving failed, please try sending the lyrics again")
	}

	if err := h.drafts.Remove(context.Background(), chatID); err != nil {
		logger.Error(fmt.Sprintf("error clearing draft: %v", err))
	}

	logger.Info(fmt.Sprintf("new song #%d %q submitted by @%s", id, draft.Title, draft.Username))
	return b.SendMessage(chatID,
		fmt.Sprintf("medaase! %q is in the catalog as song #%d and will show as verified once an admin reviews it.\n\n/song %d to see it", draft.Title, id, id))
}

func callbackID(data string, index int) (int64, error) {
	parts := strings.Split(data, ":")
	if index >= len(parts) {
		return 0, fmt.Errorf("malformed callback data: %q", data)
	}
	id, err := strconv.ParseInt(parts[index], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed callback data: %q", data)
	}
	return id, nil
}

func SetupHandlers(clientBot *bot.Bot, drafts *state.Manager, cache *redis.Manager) {
	handlers := NewHandlers(drafts, cache)

	commandHandlers := common.GetCommandHandlers()
	commandHandlers["start"] = handlers.startHandler
	commandHandlers["search"] = handlers.searchHandler
	commandHandlers["song"] = handlers.songHandler
	commandHandlers["add"] = handlers.addHandler
	commandHandlers["cancel"] = handlers.cancelHandler
	commandHandlers["skip"] = handlers.skipHandler

	messageHandlers := []func(b *bot.Bot, update tgbotapi.Update) error{
		func(b *bot.Bot, update tgbotapi.Update) error {
			if update.Message == nil || update.Message.Text == "" {
				return nil
			}
			if draft, ok := drafts.Get(update.Message.Chat.ID); ok {
				return handlers.draftInput(b, update, draft)
			}
			// Bare text outside a submission is a search.
			return handlers.search(b, update.Message.Chat.ID, strings.TrimSpace(update.Message.Text))
		},
	}

	callbackHandlers := common.GetCallbackHandlers()
	callbackHandlers["song"] = handlers.songCallback
	callbackHandlers["slides"] = handlers.slidesCallback
	callbackHandlers["text"] = handlers.textCallback
	callbackHandlers["xml"] = handlers.xmlCallback
	callbackHandlers["sections"] = handlers.sectionsCallback
	callbackHandlers["lang"] = handlers.langCallback

	go clientBot.Start(commandHandlers, messageHandlers, callbackHandlers)
}

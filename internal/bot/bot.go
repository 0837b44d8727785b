package bot

import (
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps a Telegram bot with handler-map dispatch. Callback data is
// matched on the part before the first colon, so "song:12" routes to the
// "song" handler.
type Bot struct {
	Client     *tgbotapi.BotAPI
	updateChan tgbotapi.UpdatesChannel
	stopChan   chan struct{}
	name       string
	mu         sync.Mutex
}

// New creates a new bot instance.
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChan := botClient.GetUpdatesChan(updateConfig)

	return &Bot{
		Client:     botClient,
		updateChan: updateChan,
		stopChan:   make(chan struct{}),
		name:       name,
	}, nil
}

// Start begins processing updates with the given handlers.
func (b *Bot) Start(
	commandHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
	messageHandlers []func(b *Bot, update tgbotapi.Update) error,
	callbackHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
) {
	log.Printf("[%s] authorized on account %s", b.name, b.Client.Self.UserName)

	for {
		select {
		case update := <-b.updateChan:
			go b.processUpdate(update, commandHandlers, messageHandlers, callbackHandlers)
		case <-b.stopChan:
			return
		}
	}
}

func (b *Bot) processUpdate(
	update tgbotapi.Update,
	commandHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
	messageHandlers []func(b *Bot, update tgbotapi.Update) error,
	callbackHandlers map[string]func(b *Bot, update tgbotapi.Update) error,
) {
	if update.Message != nil && update.Message.IsCommand() {
		if handler, exists := commandHandlers[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				log.Printf("[%s] command handler error: %v", b.name, err)
			}
			return
		}
	}

	if update.CallbackQuery != nil {
		key, _, _ := strings.Cut(update.CallbackQuery.Data, ":")
		if handler, exists := callbackHandlers[key]; exists {
			// Answer first so the button stops spinning even if the handler
			// takes a while.
			if _, err := b.Client.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
				log.Printf("[%s] callback answer error: %v", b.name, err)
			}
			if err := handler(b, update); err != nil {
				log.Printf("[%s] callback handler error: %v", b.name, err)
			}
		}
		return
	}

	for _, handler := range messageHandlers {
		if err := handler(b, update); err != nil {
			log.Printf("[%s] message handler error: %v", b.name, err)
		}
	}
}

// Stop halts the bot.
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopChan <- struct{}{}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithMarkdown(chatID int64, text string, disableLinks bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.DisableWebPagePreview = disableLinks
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithButtons(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.Client.Send(msg)
	return err
}

// SendDocument sends in-memory bytes as a file attachment.
func (b *Bot) SendDocument(chatID int64, filename string, data []byte, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption
	_, err := b.Client.Send(doc)
	return err
}

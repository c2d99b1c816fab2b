package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	// SendMessage delivers text to chatID. The chat id is passed through as is,
	// so both numeric ids and @channel usernames are accepted.
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}

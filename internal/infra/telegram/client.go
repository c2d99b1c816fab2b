// internal/infra/telegram/client.go
package telegram

import (
	"strings"

	"gopkg.in/telebot.v3"
)

const redactedToken = "<redacted>"

// chatRecipient lets telebot address a chat by its raw id string.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// sendError carries a telebot error whose text no longer contains the bot token.
type sendError struct {
	text  string
	cause error
}

func (e *sendError) Error() string { return e.text }

func (e *sendError) Unwrap() error { return e.cause }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates a send-only bot. Offline skips the getMe call, so a bad token
// surfaces on the first send instead of at startup.
func NewBot(token string, apiURL string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
	})
}

// SendMessage sends a text message to the specified chat.
// Transport errors quote the request URL, which holds the token; it is
// replaced before the error leaves the adapter.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	if _, err := tba.bot.Send(chatRecipient(chatID), text, options); err != nil {
		return tba.redact(err)
	}
	return nil
}

func (tba *TelebotAdapter) redact(err error) error {
	if tba.bot.Token == "" {
		return err
	}
	return &sendError{
		text:  strings.ReplaceAll(err.Error(), tba.bot.Token, redactedToken),
		cause: err,
	}
}

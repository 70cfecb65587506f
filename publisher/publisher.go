package publisher

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/samgozman/orc-brief/pkg/errlvl"
)

// MaxMessageLength is the number of characters relayed to Telegram, below its 4096 limit.
const MaxMessageLength = 4000

type TelegramPublisher struct {
	ChatID string // Telegram chat id (e.g. 123456789, -100123456789 or @my_channel)
	BotAPI *tgbotapi.BotAPI
}

// Timeout bounds the single sendMessage request.
const Timeout = 10 * time.Second

// NewTelegramPublisher prepares the bot API client. Both values are required.
func NewTelegramPublisher(chatID, token string) (*TelegramPublisher, error) {
	return NewTelegramPublisherWithClient(chatID, token, &http.Client{Timeout: Timeout})
}

// NewTelegramPublisherWithClient is NewTelegramPublisher with a custom HTTP client.
// The bot is not verified with getMe, so Publish is the only request made.
func NewTelegramPublisherWithClient(chatID, token string, client *http.Client) (*TelegramPublisher, error) {
	if chatID == "" || token == "" {
		return nil, newError(errlvl.WARN, errEmptyCredentials)
	}

	return &TelegramPublisher{
		ChatID: chatID,
		BotAPI: &tgbotapi.BotAPI{
			Token:  token,
			Client: client,
			Buffer: 100,
		},
	}, nil
}

// Publish sends msg cut to MaxMessageLength characters and returns the message id.
func (t *TelegramPublisher) Publish(msg string) (pubID string, err error) {
	s, err := t.BotAPI.Send(newMessage(t.ChatID, Truncate(msg, MaxMessageLength)))
	if err != nil {
		return "", newError(errlvl.WARN, errSend, err)
	}
	return strconv.Itoa(s.MessageID), nil
}

// newMessage addresses numeric ids as chats and anything else as a channel username.
func newMessage(chatID, text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(chatID, text)
}

// Truncate keeps the first n characters (runes) of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package bot

import (
	"context"

	"github.com/dvconsultores/rhino-bot/bot/i18n"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

// Channel delivers engine messages over Telegram. Prompt and rejection keys
// are resolved against the catalog; quick replies that are not catalog keys
// (candidate labels, weekdays) pass through untranslated.
type Channel struct {
	bot *RhinoBot
}

func NewChannel(bot *RhinoBot) *Channel {
	return &Channel{bot: bot}
}

func (c *Channel) SendPrompt(ctx context.Context, subjectID int64, lang, promptKey string, replies []string) error {
	return c.send(subjectID, i18n.T(lang, promptKey), c.keyboard(lang, replies))
}

func (c *Channel) SendRejection(ctx context.Context, subjectID int64, lang, reasonKey, promptKey string, replies []string) error {
	// One message: why the input was rejected, then the prompt again.
	text := i18n.T(lang, reasonKey) + "\n\n" + i18n.T(lang, promptKey)
	return c.send(subjectID, text, c.keyboard(lang, replies))
}

func (c *Channel) SendNotice(ctx context.Context, subjectID int64, lang, noticeKey string, args ...any) error {
	return c.send(subjectID, i18n.Tf(lang, noticeKey, args...), tgbotapi.ReplyKeyboardRemove{RemoveKeyboard: true})
}

func (c *Channel) send(chatId int64, text string, markup tgbotapi.ReplyMarkup) error {
	_, err := c.bot.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{
		ReplyMarkup: markup,
	})
	if err != nil {
		c.bot.log.With(
			sl.Module("channel"),
		).Error("sending form message", sl.Err(err))
	}
	return err
}

// keyboard lays the replies out one per row with cancel always last.
func (c *Channel) keyboard(lang string, replies []string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(replies)+1)
	for _, reply := range replies {
		rows = append(rows, []tgbotapi.KeyboardButton{{Text: i18n.T(lang, reply)}})
	}
	rows = append(rows, []tgbotapi.KeyboardButton{{Text: i18n.T(lang, "cancel")}})

	return tgbotapi.ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

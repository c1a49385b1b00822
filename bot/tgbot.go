package bot

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
)

// Core is the data surface the bot reads from. Writes go through the form
// engine's gateway, never through here.
type Core interface {
	GetUserByTelegramId(ctx context.Context, telegramId int64) (*entity.User, error)
	GetLanguage(ctx context.Context, telegramId int64) (*entity.Language, error)
	ListPlans(ctx context.Context) ([]entity.Plan, error)
	ListLocations(ctx context.Context) ([]entity.Location, error)
	ListSchedules(ctx context.Context) ([]entity.Schedule, error)
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	ListCoaches(ctx context.Context) ([]entity.Coach, error)
}

type RhinoBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
	defaultLang string
	uploadsDir  string

	engine *form.Engine
	core   Core
}

func NewRhinoBot(botName, apiKey string, adminId int64, defaultLang, uploadsDir string, core Core, log *slog.Logger) (*RhinoBot, error) {
	bot := &RhinoBot{
		log:         log.With(sl.Module("rhinobot")),
		botUsername: botName,
		adminId:     adminId,
		defaultLang: defaultLang,
		uploadsDir:  uploadsDir,
		core:        core,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	bot.api = api

	return bot, nil
}

// SetEngine wires the form engine. Must be called before Start.
func (b *RhinoBot) SetEngine(engine *form.Engine) {
	b.engine = engine
}

// Api exposes the underlying bot for the channel adapter.
func (b *RhinoBot) Api() *tgbotapi.Bot {
	return b.api
}

// Start begins polling for updates and blocks until the updater stops.
func (b *RhinoBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(bot *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Println("an error occurred while handling update:", err.Error())
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("start", b.handleStart))
	dispatcher.AddHandler(handlers.NewCommand("menu", b.handleMenu))
	dispatcher.AddHandler(handlers.NewCommand("list", b.handleMenu))
	dispatcher.AddHandler(handlers.NewCallback(menuCallbackFilter, b.handleCallback))
	dispatcher.AddHandler(handlers.NewMessage(message.Photo, b.handleMedia))
	dispatcher.AddHandler(handlers.NewMessage(message.Document, b.handleMedia))
	dispatcher.AddHandler(handlers.NewMessage(message.Text, b.handleMessage))

	err := updater.StartPolling(b.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	b.log.Info("rhino bot started", slog.String("username", b.botUsername))

	updater.Idle()

	return nil
}

// language resolves the chat's stored preference, falling back to the
// configured default.
func (b *RhinoBot) language(ctx context.Context, telegramId int64) string {
	pref, err := b.core.GetLanguage(ctx, telegramId)
	if err != nil {
		b.log.Warn("loading language preference", slog.Int64("id", telegramId), sl.Err(err))
		return b.defaultLang
	}
	if pref == nil {
		return b.defaultLang
	}
	return pref.Language
}

func (b *RhinoBot) isStaff(ctx context.Context, telegramId int64) bool {
	if telegramId == b.adminId {
		return true
	}
	user, err := b.core.GetUserByTelegramId(ctx, telegramId)
	if err != nil || user == nil {
		return false
	}
	return user.IsStaff()
}

func (b *RhinoBot) plainResponse(chatId int64, text string) {
	sanitized := sanitize(text, false)

	if sanitized == "" {
		b.log.With(
			slog.Int64("id", chatId),
		).Debug("empty message")
		return
	}

	_, err := b.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		b.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))
		_, err = b.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			b.log.With(
				slog.Int64("id", chatId),
			).Error("sending safe message", sl.Err(err))
		}
	}
}

func sanitize(input string, preserveLinks bool) string {
	// Characters MarkdownV2 treats as markup.
	reservedChars := "\\`_{}#+-.!|()[]"
	if preserveLinks {
		reservedChars = "\\`_{}#+-.!|"
	}

	sanitized := ""
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			sanitized += "\\" + string(char)
		} else {
			sanitized += string(char)
		}
	}

	return sanitized
}

package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/dvconsultores/rhino-bot/bot"
	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/bot/forms"
	"github.com/dvconsultores/rhino-bot/impl/core"
	"github.com/dvconsultores/rhino-bot/internal/config"
	repository "github.com/dvconsultores/rhino-bot/internal/database"
	"github.com/dvconsultores/rhino-bot/internal/http-server/api"
	"github.com/dvconsultores/rhino-bot/internal/lib/logger"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"
	"github.com/dvconsultores/rhino-bot/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting rhino bot", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	db, err := repository.New(conf, lg)
	if err != nil {
		lg.Error("opening database", sl.Err(err))
		return
	}
	defer db.Close()
	lg.With(
		slog.String("path", conf.Database.Path),
	).Info("database initialized")

	hub := ws.NewHub(lg)
	go hub.Run()

	handler := core.New(lg)
	handler.SetRepository(db)
	handler.SetHub(hub)

	if conf.Telegram.Enabled {
		registry, err := forms.Build(db)
		if err != nil {
			lg.Error("building form registry", sl.Err(err))
			return
		}

		rhinoBot, err := bot.NewRhinoBot(
			conf.Telegram.BotName,
			conf.Telegram.ApiKey,
			conf.Telegram.AdminId,
			conf.DefaultLanguage,
			conf.Uploads.Dir,
			handler,
			lg,
		)
		if err != nil {
			lg.Error("initializing telegram bot", sl.Err(err))
			return
		}

		idle := time.Duration(conf.Session.IdleMinutes) * time.Minute
		engine := form.NewEngine(registry, form.NewCacheStore(idle), handler, bot.NewChannel(rhinoBot), lg)
		rhinoBot.SetEngine(engine)

		lg.With(
			slog.String("bot_name", conf.Telegram.BotName),
			sl.Secret("api_key", conf.Telegram.ApiKey),
		).Info("telegram bot initialized")

		go func() {
			if err := rhinoBot.Start(); err != nil {
				lg.Error("telegram bot stopped", sl.Err(err))
			}
		}()
	}

	// *** blocking start with http server ***
	if err := api.New(conf, lg, handler, hub); err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}

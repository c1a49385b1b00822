package language

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func GetLanguage(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.language"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		telegramId, err := strconv.ParseInt(chi.URLParam(r, "telegram_id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid telegram id"))
			return
		}

		lang, err := handler.GetLanguage(r.Context(), telegramId)
		if err != nil {
			logger.Error("failed to get language", slog.Int64("telegram_id", telegramId), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to get language"))
			return
		}

		// No stored preference means Spanish.
		if lang == nil {
			lang = &entity.Language{
				TelegramId: telegramId,
				Language:   entity.LangSpanish,
			}
		}

		render.JSON(w, r, response.Ok(lang))
	}
}

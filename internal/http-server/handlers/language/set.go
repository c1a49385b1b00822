package language

import (
	"encoding/json"
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

type SetRequest struct {
	Language string `json:"language"`
}

func SetLanguage(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req SetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.Language != entity.LangSpanish && req.Language != entity.LangEnglish {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Unsupported language"))
			return
		}

		if err := handler.SetLanguage(r.Context(), telegramId, req.Language); err != nil {
			logger.Error("failed to set language", slog.Int64("telegram_id", telegramId), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to set language"))
			return
		}

		logger.Debug("language set",
			slog.Int64("telegram_id", telegramId),
			slog.String("language", req.Language),
		)
		render.JSON(w, r, response.Ok(req.Language))
	}
}

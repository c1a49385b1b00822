package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func GetUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid user id"))
			return
		}

		user, err := handler.GetUser(r.Context(), id)
		if err != nil {
			logger.Error("failed to get user", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to get user"))
			return
		}

		if user == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("User not found"))
			return
		}

		render.JSON(w, r, response.Ok(user))
	}
}

func GetUserByTelegramId(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		telegramId, err := strconv.ParseInt(chi.URLParam(r, "telegram_id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid telegram id"))
			return
		}

		user, err := handler.GetUserByTelegramId(r.Context(), telegramId)
		if err != nil {
			logger.Error("failed to get user", slog.Int64("telegram_id", telegramId), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to get user"))
			return
		}

		if user == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("User not found"))
			return
		}

		render.JSON(w, r, response.Ok(user))
	}
}

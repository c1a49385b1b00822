package user

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

func UpdateUserByTelegramId(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var user entity.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		user.TelegramId = telegramId
		if user.Type == "" {
			user.Type = entity.UserTypeCliente
		}
		if user.Status == "" {
			user.Status = entity.UserStatusActivo
		}

		if err := validate.Struct(user); err != nil {
			logger.Error("invalid user payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		updated, err := handler.UpdateUserByTelegramId(r.Context(), telegramId, &user)
		if err != nil {
			logger.Error("failed to update user", slog.Int64("telegram_id", telegramId), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to update user"))
			return
		}

		if updated == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("User not found"))
			return
		}

		logger.Debug("user updated", slog.Int64("telegram_id", telegramId))
		render.JSON(w, r, response.Ok(updated))
	}
}

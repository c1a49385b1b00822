package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func CreateUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var user entity.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

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

		if err := handler.CreateUser(r.Context(), &user); err != nil {
			logger.Error("failed to create user", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create user"))
			return
		}

		logger.Debug("user created", slog.Int64("id", user.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(user))
	}
}

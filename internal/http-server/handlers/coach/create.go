package coach

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

func CreateCoach(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.coach"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var coach entity.Coach
		if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(coach); err != nil {
			logger.Error("invalid coach payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreateCoach(r.Context(), &coach); err != nil {
			logger.Error("failed to create coach", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create coach"))
			return
		}

		logger.Debug("coach created", slog.Int64("id", coach.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(coach))
	}
}

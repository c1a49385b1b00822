package schedule

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

func CreateSchedule(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.schedule"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var schedule entity.Schedule
		if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(schedule); err != nil {
			logger.Error("invalid schedule payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreateSchedule(r.Context(), &schedule); err != nil {
			logger.Error("failed to create schedule", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create schedule"))
			return
		}

		logger.Debug("schedule created", slog.Int64("id", schedule.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(schedule))
	}
}

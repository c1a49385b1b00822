package schedule

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListSchedules(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.schedule"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		schedules, err := handler.ListSchedules(r.Context())
		if err != nil {
			logger.Error("failed to list schedules", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list schedules"))
			return
		}

		logger.Debug("schedules listed", slog.Int("count", len(schedules)))
		render.JSON(w, r, response.Ok(schedules))
	}
}

package attendance

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListAttendances(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.attendance"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		attendances, err := handler.ListAttendances(r.Context())
		if err != nil {
			logger.Error("failed to list attendances", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list attendances"))
			return
		}

		logger.Debug("attendances listed", slog.Int("count", len(attendances)))
		render.JSON(w, r, response.Ok(attendances))
	}
}

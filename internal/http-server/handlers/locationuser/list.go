package locationuser

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListLocationUsers(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.locationuser"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		assignments, err := handler.ListLocationUsers(r.Context())
		if err != nil {
			logger.Error("failed to list location assignments", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list location assignments"))
			return
		}

		logger.Debug("location assignments listed", slog.Int("count", len(assignments)))
		render.JSON(w, r, response.Ok(assignments))
	}
}

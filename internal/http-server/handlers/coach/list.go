package coach

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListCoaches(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.coach"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		coaches, err := handler.ListCoaches(r.Context())
		if err != nil {
			logger.Error("failed to list coaches", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list coaches"))
			return
		}

		logger.Debug("coaches listed", slog.Int("count", len(coaches)))
		render.JSON(w, r, response.Ok(coaches))
	}
}

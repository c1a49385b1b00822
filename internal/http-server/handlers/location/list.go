package location

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListLocations(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.location"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		locations, err := handler.ListLocations(r.Context())
		if err != nil {
			logger.Error("failed to list locations", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list locations"))
			return
		}

		logger.Debug("locations listed", slog.Int("count", len(locations)))
		render.JSON(w, r, response.Ok(locations))
	}
}

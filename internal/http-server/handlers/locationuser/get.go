package locationuser

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

func GetLocationUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.locationuser"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid assignment id"))
			return
		}

		assignment, err := handler.GetLocationUser(r.Context(), id)
		if err != nil {
			logger.Error("failed to get location assignment", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to get location assignment"))
			return
		}

		if assignment == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("Location assignment not found"))
			return
		}

		render.JSON(w, r, response.Ok(assignment))
	}
}

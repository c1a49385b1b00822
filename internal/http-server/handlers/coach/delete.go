package coach

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

func DeleteCoach(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.coach"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid coach id"))
			return
		}

		deleted, err := handler.DeleteCoach(r.Context(), id)
		if err != nil {
			logger.Error("failed to delete coach", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to delete coach"))
			return
		}

		if !deleted {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("Coach not found"))
			return
		}

		logger.Debug("coach deleted", slog.Int64("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

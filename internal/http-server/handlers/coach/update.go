package coach

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type UpdateRequest struct {
	Names      string `json:"names" validate:"required"`
	LocationId int64  `json:"location_id" validate:"required"`
}

func UpdateCoach(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("invalid coach payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		updated, err := handler.UpdateCoach(r.Context(), id, req.Names, req.LocationId)
		if err != nil {
			logger.Error("failed to update coach", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to update coach"))
			return
		}

		if updated == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("Coach not found"))
			return
		}

		logger.Debug("coach updated", slog.Int64("id", id))
		render.JSON(w, r, response.Ok(updated))
	}
}

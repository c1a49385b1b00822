package attendance

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func UpdateAttendance(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.attendance"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid attendance id"))
			return
		}

		var attendance entity.Attendance
		if err := json.NewDecoder(r.Body).Decode(&attendance); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(attendance); err != nil {
			logger.Error("invalid attendance payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		updated, err := handler.UpdateAttendance(r.Context(), id, &attendance)
		if err != nil {
			logger.Error("failed to update attendance", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to update attendance"))
			return
		}

		if updated == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("Attendance not found"))
			return
		}

		logger.Debug("attendance updated", slog.Int64("id", id))
		render.JSON(w, r, response.Ok(updated))
	}
}

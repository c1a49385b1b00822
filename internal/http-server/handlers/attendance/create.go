package attendance

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

func CreateAttendance(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.attendance"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

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

		if err := handler.CreateAttendance(r.Context(), &attendance); err != nil {
			logger.Error("failed to create attendance", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create attendance"))
			return
		}

		logger.Debug("attendance created", slog.Int64("id", attendance.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(attendance))
	}
}

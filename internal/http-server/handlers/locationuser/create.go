package locationuser

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

func CreateLocationUser(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.locationuser"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var assignment entity.LocationUser
		if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if assignment.Status == "" {
			assignment.Status = entity.AssignmentActivo
		}

		if err := validate.Struct(assignment); err != nil {
			logger.Error("invalid assignment payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreateLocationUser(r.Context(), &assignment); err != nil {
			logger.Error("failed to create location assignment", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create location assignment"))
			return
		}

		logger.Debug("location assignment created", slog.Int64("id", assignment.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(assignment))
	}
}

package location

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

func CreateLocation(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.location"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var location entity.Location
		if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(location); err != nil {
			logger.Error("invalid location payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreateLocation(r.Context(), &location); err != nil {
			logger.Error("failed to create location", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create location"))
			return
		}

		logger.Debug("location created", slog.Int64("id", location.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(location))
	}
}

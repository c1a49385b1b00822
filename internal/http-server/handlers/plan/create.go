package plan

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

func CreatePlan(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.plan"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var plan entity.Plan
		if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(plan); err != nil {
			logger.Error("invalid plan payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreatePlan(r.Context(), &plan); err != nil {
			logger.Error("failed to create plan", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create plan"))
			return
		}

		logger.Debug("plan created", slog.Int64("id", plan.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(plan))
	}
}

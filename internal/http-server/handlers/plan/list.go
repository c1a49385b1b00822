package plan

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListPlans(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.plan"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		plans, err := handler.ListPlans(r.Context())
		if err != nil {
			logger.Error("failed to list plans", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list plans"))
			return
		}

		logger.Debug("plans listed", slog.Int("count", len(plans)))
		render.JSON(w, r, response.Ok(plans))
	}
}

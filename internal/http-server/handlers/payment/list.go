package payment

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListPayments(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.payment"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		payments, err := handler.ListPayments(r.Context())
		if err != nil {
			logger.Error("failed to list payments", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list payments"))
			return
		}

		logger.Debug("payments listed", slog.Int("count", len(payments)))
		render.JSON(w, r, response.Ok(payments))
	}
}

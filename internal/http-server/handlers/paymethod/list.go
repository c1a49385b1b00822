package paymethod

import (
	"log/slog"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func ListPaymentMethods(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.paymethod"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		methods, err := handler.ListPaymentMethods(r.Context())
		if err != nil {
			logger.Error("failed to list payment methods", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to list payment methods"))
			return
		}

		logger.Debug("payment methods listed", slog.Int("count", len(methods)))
		render.JSON(w, r, response.Ok(methods))
	}
}

package paymethod

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

func CreatePaymentMethod(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.paymethod"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var method entity.PaymentMethod
		if err := json.NewDecoder(r.Body).Decode(&method); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(method); err != nil {
			logger.Error("invalid payment method payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreatePaymentMethod(r.Context(), &method); err != nil {
			logger.Error("failed to create payment method", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create payment method"))
			return
		}

		logger.Debug("payment method created", slog.Int64("id", method.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(method))
	}
}

package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func CreatePayment(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.payment"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var payment entity.Payment
		if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		now := time.Now()
		if payment.Date == "" {
			payment.Date = now.Format("2006-01-02")
		}
		if payment.Year == 0 {
			payment.Year = now.Year()
		}
		if payment.Month == 0 {
			payment.Month = int(now.Month())
		}

		if err := validate.Struct(payment); err != nil {
			logger.Error("invalid payment payload", sl.Err(err))
			render.Status(r, 400)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err := handler.CreatePayment(r.Context(), &payment); err != nil {
			logger.Error("failed to create payment", sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to create payment"))
			return
		}

		logger.Debug("payment created", slog.Int64("id", payment.ID))
		render.Status(r, 201)
		render.JSON(w, r, response.Ok(payment))
	}
}

package paymethod

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func GetPaymentMethod(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.paymethod"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, 400)
			render.JSON(w, r, response.Error("Invalid payment method id"))
			return
		}

		method, err := handler.GetPaymentMethod(r.Context(), id)
		if err != nil {
			logger.Error("failed to get payment method", slog.Int64("id", id), sl.Err(err))
			render.Status(r, 500)
			render.JSON(w, r, response.Error("Failed to get payment method"))
			return
		}

		if method == nil {
			render.Status(r, 404)
			render.JSON(w, r, response.Error("Payment method not found"))
			return
		}

		render.JSON(w, r, response.Ok(method))
	}
}

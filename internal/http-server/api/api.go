package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/dvconsultores/rhino-bot/internal/config"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/attendance"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/coach"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/errors"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/language"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/location"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/locationuser"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/paymethod"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/payment"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/plan"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/schedule"
	"github.com/dvconsultores/rhino-bot/internal/http-server/handlers/user"
	"github.com/dvconsultores/rhino-bot/internal/http-server/middleware/logging"
	"github.com/dvconsultores/rhino-bot/internal/http-server/middleware/timeout"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"
	"github.com/dvconsultores/rhino-bot/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	user.Core
	coach.Core
	location.Core
	locationuser.Core
	schedule.Core
	plan.Core
	paymethod.Core
	payment.Core
	attendance.Core
	language.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(logging.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		// The websocket route keeps its connection open, so the request
		// timeout applies to the REST group only.
		rest := v1.With(timeout.Timeout(5))

		rest.Route("/users", func(r chi.Router) {
			r.Get("/", user.ListUsers(log, handler))
			r.Get("/{id}", user.GetUser(log, handler))
			r.Get("/telegram/{telegram_id}", user.GetUserByTelegramId(log, handler))
			r.Post("/", user.CreateUser(log, handler))
			r.Put("/telegram/{telegram_id}", user.UpdateUserByTelegramId(log, handler))
			r.Delete("/{id}", user.DeleteUser(log, handler))
		})
		rest.Route("/coaches", func(r chi.Router) {
			r.Get("/", coach.ListCoaches(log, handler))
			r.Get("/{id}", coach.GetCoach(log, handler))
			r.Post("/", coach.CreateCoach(log, handler))
			r.Put("/{id}", coach.UpdateCoach(log, handler))
			r.Delete("/{id}", coach.DeleteCoach(log, handler))
		})
		rest.Route("/locations", func(r chi.Router) {
			r.Get("/", location.ListLocations(log, handler))
			r.Get("/{id}", location.GetLocation(log, handler))
			r.Post("/", location.CreateLocation(log, handler))
			r.Put("/{id}", location.UpdateLocation(log, handler))
			r.Delete("/{id}", location.DeleteLocation(log, handler))
		})
		rest.Route("/location_users", func(r chi.Router) {
			r.Get("/", locationuser.ListLocationUsers(log, handler))
			r.Get("/{id}", locationuser.GetLocationUser(log, handler))
			r.Post("/", locationuser.CreateLocationUser(log, handler))
			r.Put("/{id}", locationuser.UpdateLocationUser(log, handler))
			r.Delete("/{id}", locationuser.DeleteLocationUser(log, handler))
		})
		rest.Route("/schedules", func(r chi.Router) {
			r.Get("/", schedule.ListSchedules(log, handler))
			r.Get("/{id}", schedule.GetSchedule(log, handler))
			r.Post("/", schedule.CreateSchedule(log, handler))
			r.Put("/{id}", schedule.UpdateSchedule(log, handler))
			r.Delete("/{id}", schedule.DeleteSchedule(log, handler))
		})
		rest.Route("/plans", func(r chi.Router) {
			r.Get("/", plan.ListPlans(log, handler))
			r.Get("/{id}", plan.GetPlan(log, handler))
			r.Post("/", plan.CreatePlan(log, handler))
			r.Put("/{id}", plan.UpdatePlan(log, handler))
			r.Delete("/{id}", plan.DeletePlan(log, handler))
		})
		rest.Route("/payment_methods", func(r chi.Router) {
			r.Get("/", paymethod.ListPaymentMethods(log, handler))
			r.Get("/{id}", paymethod.GetPaymentMethod(log, handler))
			r.Post("/", paymethod.CreatePaymentMethod(log, handler))
			r.Put("/{id}", paymethod.UpdatePaymentMethod(log, handler))
			r.Delete("/{id}", paymethod.DeletePaymentMethod(log, handler))
		})
		rest.Route("/payments", func(r chi.Router) {
			r.Get("/", payment.ListPayments(log, handler))
			r.Get("/{id}", payment.GetPayment(log, handler))
			r.Post("/", payment.CreatePayment(log, handler))
			r.Put("/{id}", payment.UpdatePayment(log, handler))
			r.Delete("/{id}", payment.DeletePayment(log, handler))
		})
		rest.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendance.ListAttendances(log, handler))
			r.Get("/{id}", attendance.GetAttendance(log, handler))
			r.Post("/", attendance.CreateAttendance(log, handler))
			r.Put("/{id}", attendance.UpdateAttendance(log, handler))
			r.Delete("/{id}", attendance.DeleteAttendance(log, handler))
		})
		rest.Route("/languages", func(r chi.Router) {
			r.Get("/{telegram_id}", language.GetLanguage(log, handler))
			r.Put("/{telegram_id}", language.SetLanguage(log, handler))
		})
		v1.Get("/events/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, log, w, r)
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}

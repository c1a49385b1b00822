package core

import (
	"context"
	"log/slog"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"
	"github.com/dvconsultores/rhino-bot/internal/ws"
)

type Repository interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByTelegramId(ctx context.Context, telegramId int64) (*entity.User, error)
	CreateUser(ctx context.Context, u *entity.User) error
	UpdateUserByTelegramId(ctx context.Context, telegramId int64, u *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)

	ListCoaches(ctx context.Context) ([]entity.Coach, error)
	GetCoach(ctx context.Context, id int64) (*entity.Coach, error)
	CreateCoach(ctx context.Context, c *entity.Coach) error
	UpdateCoach(ctx context.Context, id int64, names string, locationId int64) (*entity.Coach, error)
	DeleteCoach(ctx context.Context, id int64) (bool, error)

	ListLocations(ctx context.Context) ([]entity.Location, error)
	GetLocation(ctx context.Context, id int64) (*entity.Location, error)
	CreateLocation(ctx context.Context, l *entity.Location) error
	UpdateLocation(ctx context.Context, id int64, name, address string) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id int64) (bool, error)

	ListLocationUsers(ctx context.Context) ([]entity.LocationUser, error)
	GetLocationUser(ctx context.Context, id int64) (*entity.LocationUser, error)
	CreateLocationUser(ctx context.Context, a *entity.LocationUser) error
	UpdateLocationUser(ctx context.Context, id int64, a *entity.LocationUser) (*entity.LocationUser, error)
	DeleteLocationUser(ctx context.Context, id int64) (bool, error)

	ListSchedules(ctx context.Context) ([]entity.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (*entity.Schedule, error)
	CreateSchedule(ctx context.Context, sc *entity.Schedule) error
	UpdateSchedule(ctx context.Context, id int64, sc *entity.Schedule) (*entity.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) (bool, error)

	ListPlans(ctx context.Context) ([]entity.Plan, error)
	GetPlan(ctx context.Context, id int64) (*entity.Plan, error)
	CreatePlan(ctx context.Context, p *entity.Plan) error
	UpdatePlan(ctx context.Context, id int64, name string, price float64) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id int64) (bool, error)

	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, m *entity.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, id int64, method string) (*entity.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id int64) (bool, error)

	ListPayments(ctx context.Context) ([]entity.Payment, error)
	GetPayment(ctx context.Context, id int64) (*entity.Payment, error)
	CreatePayment(ctx context.Context, p *entity.Payment) error
	UpdatePayment(ctx context.Context, id int64, p *entity.Payment) (*entity.Payment, error)
	DeletePayment(ctx context.Context, id int64) (bool, error)

	ListAttendances(ctx context.Context) ([]entity.Attendance, error)
	GetAttendance(ctx context.Context, id int64) (*entity.Attendance, error)
	CreateAttendance(ctx context.Context, a *entity.Attendance) error
	UpdateAttendance(ctx context.Context, id int64, a *entity.Attendance) (*entity.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) (bool, error)

	GetLanguage(ctx context.Context, telegramId int64) (*entity.Language, error)
	SetLanguage(ctx context.Context, telegramId int64, lang string) error

	ListCandidates(ctx context.Context, kind string) ([]form.Candidate, error)
}

// Core wires the repository, the event hub and the bot's submission gateway
// behind the per-handler interfaces.
type Core struct {
	repo Repository
	hub  *ws.Hub
	log  *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetHub(hub *ws.Hub) {
	c.hub = hub
}

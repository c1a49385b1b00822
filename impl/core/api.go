package core

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/bot/form"
)

func (c *Core) ListUsers(ctx context.Context) ([]entity.User, error) {
	return c.repo.ListUsers(ctx)
}

func (c *Core) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return c.repo.GetUser(ctx, id)
}

func (c *Core) GetUserByTelegramId(ctx context.Context, telegramId int64) (*entity.User, error) {
	return c.repo.GetUserByTelegramId(ctx, telegramId)
}

func (c *Core) CreateUser(ctx context.Context, u *entity.User) error {
	return c.repo.CreateUser(ctx, u)
}

func (c *Core) UpdateUserByTelegramId(ctx context.Context, telegramId int64, u *entity.User) (*entity.User, error) {
	return c.repo.UpdateUserByTelegramId(ctx, telegramId, u)
}

func (c *Core) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteUser(ctx, id)
}

func (c *Core) ListCoaches(ctx context.Context) ([]entity.Coach, error) {
	return c.repo.ListCoaches(ctx)
}

func (c *Core) GetCoach(ctx context.Context, id int64) (*entity.Coach, error) {
	return c.repo.GetCoach(ctx, id)
}

func (c *Core) CreateCoach(ctx context.Context, coach *entity.Coach) error {
	return c.repo.CreateCoach(ctx, coach)
}

func (c *Core) UpdateCoach(ctx context.Context, id int64, names string, locationId int64) (*entity.Coach, error) {
	return c.repo.UpdateCoach(ctx, id, names, locationId)
}

func (c *Core) DeleteCoach(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteCoach(ctx, id)
}

func (c *Core) ListLocations(ctx context.Context) ([]entity.Location, error) {
	return c.repo.ListLocations(ctx)
}

func (c *Core) GetLocation(ctx context.Context, id int64) (*entity.Location, error) {
	return c.repo.GetLocation(ctx, id)
}

func (c *Core) CreateLocation(ctx context.Context, l *entity.Location) error {
	return c.repo.CreateLocation(ctx, l)
}

func (c *Core) UpdateLocation(ctx context.Context, id int64, name, address string) (*entity.Location, error) {
	return c.repo.UpdateLocation(ctx, id, name, address)
}

func (c *Core) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteLocation(ctx, id)
}

func (c *Core) ListLocationUsers(ctx context.Context) ([]entity.LocationUser, error) {
	return c.repo.ListLocationUsers(ctx)
}

func (c *Core) GetLocationUser(ctx context.Context, id int64) (*entity.LocationUser, error) {
	return c.repo.GetLocationUser(ctx, id)
}

func (c *Core) CreateLocationUser(ctx context.Context, a *entity.LocationUser) error {
	return c.repo.CreateLocationUser(ctx, a)
}

func (c *Core) UpdateLocationUser(ctx context.Context, id int64, a *entity.LocationUser) (*entity.LocationUser, error) {
	return c.repo.UpdateLocationUser(ctx, id, a)
}

func (c *Core) DeleteLocationUser(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteLocationUser(ctx, id)
}

func (c *Core) ListSchedules(ctx context.Context) ([]entity.Schedule, error) {
	return c.repo.ListSchedules(ctx)
}

func (c *Core) GetSchedule(ctx context.Context, id int64) (*entity.Schedule, error) {
	return c.repo.GetSchedule(ctx, id)
}

func (c *Core) CreateSchedule(ctx context.Context, sc *entity.Schedule) error {
	return c.repo.CreateSchedule(ctx, sc)
}

func (c *Core) UpdateSchedule(ctx context.Context, id int64, sc *entity.Schedule) (*entity.Schedule, error) {
	return c.repo.UpdateSchedule(ctx, id, sc)
}

func (c *Core) DeleteSchedule(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteSchedule(ctx, id)
}

func (c *Core) ListPlans(ctx context.Context) ([]entity.Plan, error) {
	return c.repo.ListPlans(ctx)
}

func (c *Core) GetPlan(ctx context.Context, id int64) (*entity.Plan, error) {
	return c.repo.GetPlan(ctx, id)
}

func (c *Core) CreatePlan(ctx context.Context, p *entity.Plan) error {
	return c.repo.CreatePlan(ctx, p)
}

func (c *Core) UpdatePlan(ctx context.Context, id int64, name string, price float64) (*entity.Plan, error) {
	return c.repo.UpdatePlan(ctx, id, name, price)
}

func (c *Core) DeletePlan(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeletePlan(ctx, id)
}

func (c *Core) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return c.repo.ListPaymentMethods(ctx)
}

func (c *Core) GetPaymentMethod(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	return c.repo.GetPaymentMethod(ctx, id)
}

func (c *Core) CreatePaymentMethod(ctx context.Context, m *entity.PaymentMethod) error {
	return c.repo.CreatePaymentMethod(ctx, m)
}

func (c *Core) UpdatePaymentMethod(ctx context.Context, id int64, method string) (*entity.PaymentMethod, error) {
	return c.repo.UpdatePaymentMethod(ctx, id, method)
}

func (c *Core) DeletePaymentMethod(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeletePaymentMethod(ctx, id)
}

func (c *Core) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	return c.repo.ListPayments(ctx)
}

func (c *Core) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	return c.repo.GetPayment(ctx, id)
}

func (c *Core) CreatePayment(ctx context.Context, p *entity.Payment) error {
	if err := c.repo.CreatePayment(ctx, p); err != nil {
		return err
	}
	if c.hub != nil {
		c.hub.BroadcastPayment(*p)
	}
	return nil
}

func (c *Core) UpdatePayment(ctx context.Context, id int64, p *entity.Payment) (*entity.Payment, error) {
	return c.repo.UpdatePayment(ctx, id, p)
}

func (c *Core) DeletePayment(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeletePayment(ctx, id)
}

func (c *Core) ListAttendances(ctx context.Context) ([]entity.Attendance, error) {
	return c.repo.ListAttendances(ctx)
}

func (c *Core) GetAttendance(ctx context.Context, id int64) (*entity.Attendance, error) {
	return c.repo.GetAttendance(ctx, id)
}

func (c *Core) CreateAttendance(ctx context.Context, a *entity.Attendance) error {
	if err := c.repo.CreateAttendance(ctx, a); err != nil {
		return err
	}
	if c.hub != nil {
		c.hub.BroadcastAttendance(*a)
	}
	return nil
}

func (c *Core) UpdateAttendance(ctx context.Context, id int64, a *entity.Attendance) (*entity.Attendance, error) {
	return c.repo.UpdateAttendance(ctx, id, a)
}

func (c *Core) DeleteAttendance(ctx context.Context, id int64) (bool, error) {
	return c.repo.DeleteAttendance(ctx, id)
}

func (c *Core) GetLanguage(ctx context.Context, telegramId int64) (*entity.Language, error) {
	return c.repo.GetLanguage(ctx, telegramId)
}

func (c *Core) SetLanguage(ctx context.Context, telegramId int64, lang string) error {
	return c.repo.SetLanguage(ctx, telegramId, lang)
}

func (c *Core) ListCandidates(ctx context.Context, kind string) ([]form.Candidate, error) {
	return c.repo.ListCandidates(ctx, kind)
}

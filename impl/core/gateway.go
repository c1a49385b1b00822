package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dvconsultores/rhino-bot/bot/forms"
	"github.com/dvconsultores/rhino-bot/entity"
)

// Submit is the terminal action of every bot wizard: it turns a completed
// payload into repository writes and returns the string echoed back in the
// confirmation notice.
func (c *Core) Submit(ctx context.Context, formID string, subjectID int64, payload map[string]any) (string, error) {
	switch formID {
	case forms.RegisterUser:
		return c.submitUser(ctx, subjectID, payload, false)

	case forms.UpdateUser:
		return c.submitUser(ctx, subjectID, payload, true)

	case forms.LogPayment:
		return c.submitPayment(ctx, subjectID, payload)

	case forms.LogAttendance:
		return c.submitAttendance(ctx, payload)

	case forms.AddCoach:
		coach := &entity.Coach{
			Cedula:     str(payload, "cedula"),
			Names:      str(payload, "names"),
			LocationId: i64(payload, "location"),
		}
		if err := c.repo.CreateCoach(ctx, coach); err != nil {
			return "", err
		}
		return coach.Names, nil

	case forms.EditCoach:
		coach, err := c.repo.UpdateCoach(ctx, i64(payload, "coach"), str(payload, "names"), i64(payload, "location"))
		if err != nil {
			return "", err
		}
		if coach == nil {
			return "", fmt.Errorf("coach %d not found", i64(payload, "coach"))
		}
		return coach.Names, nil

	case forms.DeleteCoach:
		return c.submitDelete(ctx, payload, "coach", c.repo.DeleteCoach)

	case forms.AddLocation:
		location := &entity.Location{
			Location: str(payload, "name"),
			Address:  str(payload, "address"),
		}
		if err := c.repo.CreateLocation(ctx, location); err != nil {
			return "", err
		}
		return location.Location, nil

	case forms.EditLocation:
		location, err := c.repo.UpdateLocation(ctx, i64(payload, "location"), str(payload, "name"), str(payload, "address"))
		if err != nil {
			return "", err
		}
		if location == nil {
			return "", fmt.Errorf("location %d not found", i64(payload, "location"))
		}
		return location.Location, nil

	case forms.DeleteLocation:
		return c.submitDelete(ctx, payload, "location", c.repo.DeleteLocation)

	case forms.AddPlan:
		plan := &entity.Plan{
			Name:  str(payload, "name"),
			Price: f64(payload, "price"),
		}
		if err := c.repo.CreatePlan(ctx, plan); err != nil {
			return "", err
		}
		return plan.Name, nil

	case forms.EditPlan:
		plan, err := c.repo.UpdatePlan(ctx, i64(payload, "plan"), str(payload, "name"), f64(payload, "price"))
		if err != nil {
			return "", err
		}
		if plan == nil {
			return "", fmt.Errorf("plan %d not found", i64(payload, "plan"))
		}
		return plan.Name, nil

	case forms.DeletePlan:
		return c.submitDelete(ctx, payload, "plan", c.repo.DeletePlan)

	case forms.AddPaymentMethod:
		method := &entity.PaymentMethod{Method: str(payload, "method")}
		if err := c.repo.CreatePaymentMethod(ctx, method); err != nil {
			return "", err
		}
		return method.Method, nil

	case forms.EditPaymentMethod:
		method, err := c.repo.UpdatePaymentMethod(ctx, i64(payload, "payment_method"), str(payload, "method"))
		if err != nil {
			return "", err
		}
		if method == nil {
			return "", fmt.Errorf("payment method %d not found", i64(payload, "payment_method"))
		}
		return method.Method, nil

	case forms.DeletePaymentMethod:
		return c.submitDelete(ctx, payload, "payment_method", c.repo.DeletePaymentMethod)

	case forms.AddSchedule:
		schedule := &entity.Schedule{
			LocationId: i64(payload, "location"),
			Days:       str(payload, "day"),
			TimeInit:   str(payload, "time_init"),
			TimeEnd:    str(payload, "time_end"),
		}
		if err := c.repo.CreateSchedule(ctx, schedule); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s-%s", schedule.Days, schedule.TimeInit, schedule.TimeEnd), nil

	case forms.EditSchedule:
		schedule, err := c.repo.UpdateSchedule(ctx, i64(payload, "schedule"), &entity.Schedule{
			LocationId: i64(payload, "location"),
			Days:       str(payload, "day"),
			TimeInit:   str(payload, "time_init"),
			TimeEnd:    str(payload, "time_end"),
		})
		if err != nil {
			return "", err
		}
		if schedule == nil {
			return "", fmt.Errorf("schedule %d not found", i64(payload, "schedule"))
		}
		return fmt.Sprintf("%s %s-%s", schedule.Days, schedule.TimeInit, schedule.TimeEnd), nil

	case forms.DeleteSchedule:
		return c.submitDelete(ctx, payload, "schedule", c.repo.DeleteSchedule)

	case forms.SetLanguage:
		lang := strings.ToLower(str(payload, "language"))
		if err := c.repo.SetLanguage(ctx, subjectID, lang); err != nil {
			return "", err
		}
		return strings.ToUpper(lang), nil
	}

	return "", fmt.Errorf("no submission for form %s", formID)
}

func (c *Core) submitUser(ctx context.Context, subjectID int64, payload map[string]any, update bool) (string, error) {
	user := entity.NewUser(subjectID)
	user.Name = str(payload, "name")
	user.Lastname = str(payload, "lastname")
	user.Cedula = i64(payload, "cedula")
	user.Email = str(payload, "email")
	user.DateOfBirth = str(payload, "date_of_birth")
	user.Phone = i64(payload, "phone")
	user.Instagram = str(payload, "instagram")

	if update {
		updated, err := c.repo.UpdateUserByTelegramId(ctx, subjectID, user)
		if err != nil {
			return "", err
		}
		if updated == nil {
			return "", fmt.Errorf("user %d not registered", subjectID)
		}
		return fmt.Sprintf("%s %s", updated.Name, updated.Lastname), nil
	}

	if err := c.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", user.Name, user.Lastname), nil
}

func (c *Core) submitPayment(ctx context.Context, subjectID int64, payload map[string]any) (string, error) {
	user, err := c.repo.GetUserByTelegramId(ctx, subjectID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %d not registered", subjectID)
	}

	payment := entity.NewPayment(user.ID, f64(payload, "amount"))
	payment.PaymentMethodId = i64(payload, "payment_method")
	payment.Reference = str(payload, "reference")
	payment.ProofPath = str(payload, "proof")

	if err := c.CreatePayment(ctx, payment); err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", payment.Amount), nil
}

func (c *Core) submitAttendance(ctx context.Context, payload map[string]any) (string, error) {
	attendance := &entity.Attendance{
		CoachId:    i64(payload, "coach"),
		UserId:     i64(payload, "client_id"),
		LocationId: i64(payload, "location"),
		Date:       time.Now(),
	}

	if err := c.CreateAttendance(ctx, attendance); err != nil {
		return "", err
	}
	return attendance.Date.Format("2006-01-02"), nil
}

// submitDelete runs a delete wizard's terminal action. A declined confirm
// field leaves the record alone; the confirmation echoes the record id.
func (c *Core) submitDelete(ctx context.Context, payload map[string]any, field string, del func(context.Context, int64) (bool, error)) (string, error) {
	id := i64(payload, field)
	if !boolean(payload, "confirm") {
		return fmt.Sprintf("#%d", id), nil
	}

	deleted, err := del(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", fmt.Errorf("%s %d not found", field, id)
	}
	return fmt.Sprintf("#%d", id), nil
}

func str(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

func i64(payload map[string]any, key string) int64 {
	v, _ := payload[key].(int64)
	return v
}

func f64(payload map[string]any, key string) float64 {
	v, _ := payload[key].(float64)
	return v
}

func boolean(payload map[string]any, key string) bool {
	v, _ := payload[key].(bool)
	return v
}

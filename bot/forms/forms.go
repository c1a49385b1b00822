// Package forms declares every wizard the bot offers as data consumed by the
// form engine. Adding a wizard means adding a definition here and a branch in
// the submission gateway, not another chain of handler functions.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/dvconsultores/rhino-bot/bot/form"
	"github.com/dvconsultores/rhino-bot/entity"
)

// Form ids. The submission gateway switches on these.
const (
	RegisterUser        = "register_user"
	UpdateUser          = "update_user"
	LogPayment          = "log_payment"
	LogAttendance       = "log_attendance"
	AddCoach            = "add_coach"
	EditCoach           = "edit_coach"
	DeleteCoach         = "delete_coach"
	AddLocation         = "add_location"
	EditLocation        = "edit_location"
	DeleteLocation      = "delete_location"
	AddPlan             = "add_plan"
	EditPlan            = "edit_plan"
	DeletePlan          = "delete_plan"
	AddPaymentMethod    = "add_payment_method"
	EditPaymentMethod   = "edit_payment_method"
	DeletePaymentMethod = "delete_payment_method"
	AddSchedule         = "add_schedule"
	EditSchedule        = "edit_schedule"
	DeleteSchedule      = "delete_schedule"
	SetLanguage         = "set_language"
)

// Candidate kinds understood by the repository-backed source.
const (
	KindCoaches        = "coaches"
	KindLocations      = "locations"
	KindPlans          = "plans"
	KindPaymentMethods = "payment_methods"
	KindSchedules      = "schedules"
)

// Build assembles the form registry against the given candidate source.
func Build(source form.CandidateSource) (*form.Registry, error) {
	userFields := []form.Field{
		{Name: "name", Prompt: "prompt_user_name", Validator: form.NonEmpty()},
		{Name: "lastname", Prompt: "prompt_user_lastname", Validator: form.NonEmpty()},
		{Name: "cedula", Prompt: "prompt_user_cedula", Validator: form.Integer()},
		{Name: "email", Prompt: "prompt_user_email", Validator: form.Email()},
		{Name: "date_of_birth", Prompt: "prompt_user_birth", Validator: form.Date()},
		{Name: "phone", Prompt: "prompt_user_phone", Validator: form.Integer()},
		{Name: "instagram", Prompt: "prompt_user_instagram", Validator: form.NonEmpty(), Optional: true},
	}

	return form.NewRegistry(
		form.Definition{ID: RegisterUser, Fields: userFields},
		form.Definition{ID: UpdateUser, Fields: userFields},

		form.Definition{ID: LogPayment, Fields: []form.Field{
			candidate("payment_method", "prompt_payment_method", source, KindPaymentMethods),
			{Name: "amount", Prompt: "prompt_payment_amount", Validator: form.Decimal()},
			{Name: "reference", Prompt: "prompt_payment_reference", Validator: form.NonEmpty(), Optional: true},
			{Name: "proof", Prompt: "prompt_payment_proof", Validator: form.FileRef(), Optional: true},
		}},

		form.Definition{ID: LogAttendance, Fields: []form.Field{
			candidate("coach", "prompt_attendance_coach", source, KindCoaches),
			{Name: "client_id", Prompt: "prompt_attendance_client", Validator: form.Integer()},
			candidate("location", "prompt_attendance_location", source, KindLocations),
		}},

		form.Definition{ID: AddCoach, Fields: []form.Field{
			{Name: "cedula", Prompt: "prompt_coach_cedula", Validator: form.NonEmpty()},
			{Name: "names", Prompt: "prompt_coach_names", Validator: form.NonEmpty()},
			candidate("location", "prompt_coach_location", source, KindLocations),
		}},
		form.Definition{ID: EditCoach, Fields: []form.Field{
			candidate("coach", "prompt_coach_select", source, KindCoaches),
			{Name: "names", Prompt: "prompt_coach_names", Validator: form.NonEmpty()},
			candidate("location", "prompt_coach_location", source, KindLocations),
		}},
		form.Definition{ID: DeleteCoach, Fields: []form.Field{
			candidate("coach", "prompt_coach_select", source, KindCoaches),
			confirm(),
		}},

		form.Definition{ID: AddLocation, Fields: []form.Field{
			{Name: "name", Prompt: "prompt_location_name", Validator: form.NonEmpty()},
			{Name: "address", Prompt: "prompt_location_address", Validator: form.NonEmpty()},
		}},
		form.Definition{ID: EditLocation, Fields: []form.Field{
			candidate("location", "prompt_location_select", source, KindLocations),
			{Name: "name", Prompt: "prompt_location_name", Validator: form.NonEmpty()},
			{Name: "address", Prompt: "prompt_location_address", Validator: form.NonEmpty()},
		}},
		form.Definition{ID: DeleteLocation, Fields: []form.Field{
			candidate("location", "prompt_location_select", source, KindLocations),
			confirm(),
		}},

		form.Definition{ID: AddPlan, Fields: []form.Field{
			{Name: "name", Prompt: "prompt_plan_name", Validator: form.NonEmpty()},
			{Name: "price", Prompt: "prompt_plan_price", Validator: form.Decimal()},
		}},
		form.Definition{ID: EditPlan, Fields: []form.Field{
			candidate("plan", "prompt_plan_select", source, KindPlans),
			{Name: "name", Prompt: "prompt_plan_name", Validator: form.NonEmpty()},
			{Name: "price", Prompt: "prompt_plan_price", Validator: form.Decimal()},
		}},
		form.Definition{ID: DeletePlan, Fields: []form.Field{
			candidate("plan", "prompt_plan_select", source, KindPlans),
			confirm(),
		}},

		form.Definition{ID: AddPaymentMethod, Fields: []form.Field{
			{Name: "method", Prompt: "prompt_method_name", Validator: form.NonEmpty()},
		}},
		form.Definition{ID: EditPaymentMethod, Fields: []form.Field{
			candidate("payment_method", "prompt_method_select", source, KindPaymentMethods),
			{Name: "method", Prompt: "prompt_method_name", Validator: form.NonEmpty()},
		}},
		form.Definition{ID: DeletePaymentMethod, Fields: []form.Field{
			candidate("payment_method", "prompt_method_select", source, KindPaymentMethods),
			confirm(),
		}},

		form.Definition{ID: AddSchedule, Fields: []form.Field{
			candidate("location", "prompt_schedule_location", source, KindLocations),
			{Name: "day", Prompt: "prompt_schedule_day", Validator: form.Enum(entity.Weekdays...), Replies: entity.Weekdays},
			{Name: "time_init", Prompt: "prompt_schedule_time_init", Validator: form.TimeOfDay()},
			{Name: "time_end", Prompt: "prompt_schedule_time_end", Validator: form.TimeOfDay()},
		}},
		form.Definition{ID: EditSchedule, Fields: []form.Field{
			candidate("schedule", "prompt_schedule_select", source, KindSchedules),
			candidate("location", "prompt_schedule_location", source, KindLocations),
			{Name: "day", Prompt: "prompt_schedule_day", Validator: form.Enum(entity.Weekdays...), Replies: entity.Weekdays},
			{Name: "time_init", Prompt: "prompt_schedule_time_init", Validator: form.TimeOfDay()},
			{Name: "time_end", Prompt: "prompt_schedule_time_end", Validator: form.TimeOfDay()},
		}},
		form.Definition{ID: DeleteSchedule, Fields: []form.Field{
			candidate("schedule", "prompt_schedule_select", source, KindSchedules),
			confirm(),
		}},

		form.Definition{ID: SetLanguage, Fields: []form.Field{
			{Name: "language", Prompt: "prompt_language", Validator: form.Enum("ES", "EN"), Replies: []string{"ES", "EN"}},
		}},
	)
}

// candidate builds an entity-backed selection field: the keyboard lists live
// candidates and the validator resolves input to the candidate id.
func candidate(name, prompt string, source form.CandidateSource, kind string) form.Field {
	return form.Field{
		Name:      name,
		Prompt:    prompt,
		Validator: form.Candidates(source, kind),
		DynamicReplies: func(ctx context.Context) []string {
			list, err := source.ListCandidates(ctx, kind)
			if err != nil {
				return nil
			}
			replies := make([]string, len(list))
			for i, c := range list {
				replies[i] = form.CandidateLabel(c)
			}
			return replies
		},
	}
}

// confirm guards destructive wizards with an explicit yes/no field.
func confirm() form.Field {
	return form.Field{
		Name:      "confirm",
		Prompt:    "prompt_confirm_delete",
		Validator: yesNo(),
		Replies:   []string{"yes", "no"},
	}
}

func yesNo() form.Validator {
	return func(ctx context.Context, raw string) (any, error) {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "sí", "si", "yes":
			return true, nil
		case "no":
			return false, nil
		}
		return nil, errors.New(form.ReasonInvalidOption)
	}
}

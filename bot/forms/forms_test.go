package forms

import (
	"context"
	"testing"

	"github.com/dvconsultores/rhino-bot/bot/form"

	"github.com/stretchr/testify/require"
)

type stubSource struct{}

func (stubSource) ListCandidates(ctx context.Context, kind string) ([]form.Candidate, error) {
	return []form.Candidate{{ID: 1, Label: "uno"}}, nil
}

func TestBuild(t *testing.T) {
	reg, err := Build(stubSource{})
	require.NoError(t, err)

	for _, id := range []string{
		RegisterUser, UpdateUser, LogPayment, LogAttendance,
		AddCoach, EditCoach, DeleteCoach,
		AddLocation, EditLocation, DeleteLocation,
		AddPlan, EditPlan, DeletePlan,
		AddPaymentMethod, EditPaymentMethod, DeletePaymentMethod,
		AddSchedule, EditSchedule, DeleteSchedule, SetLanguage,
	} {
		_, ok := reg.Get(id)
		require.True(t, ok, "form %s not registered", id)
	}
	require.Len(t, reg.IDs(), 20)
}

func TestEditScheduleFields(t *testing.T) {
	reg, err := Build(stubSource{})
	require.NoError(t, err)

	def, ok := reg.Get(EditSchedule)
	require.True(t, ok)

	var names []string
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"schedule", "location", "day", "time_init", "time_end"}, names)

	// The schedule and location selectors offer live candidates.
	require.NotNil(t, def.Fields[0].DynamicReplies)
	require.NotNil(t, def.Fields[1].DynamicReplies)
}

func TestRegisterUserFields(t *testing.T) {
	reg, err := Build(stubSource{})
	require.NoError(t, err)

	def, ok := reg.Get(RegisterUser)
	require.True(t, ok)

	var names []string
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"name", "lastname", "cedula", "email", "date_of_birth", "phone", "instagram"}, names)

	// Only instagram may be skipped.
	for _, f := range def.Fields {
		require.Equal(t, f.Name == "instagram", f.Optional, "field %s", f.Name)
	}
}

func TestLogPaymentFields(t *testing.T) {
	reg, err := Build(stubSource{})
	require.NoError(t, err)

	def, ok := reg.Get(LogPayment)
	require.True(t, ok)

	var names []string
	optional := map[string]bool{}
	for _, f := range def.Fields {
		names = append(names, f.Name)
		optional[f.Name] = f.Optional
	}
	require.Equal(t, []string{"payment_method", "amount", "reference", "proof"}, names)
	require.False(t, optional["payment_method"])
	require.False(t, optional["amount"])
	require.True(t, optional["reference"])
	require.True(t, optional["proof"])

	// The method selector offers live candidates.
	require.NotNil(t, def.Fields[0].DynamicReplies)
	require.Equal(t, []string{"1: uno"}, def.Fields[0].DynamicReplies(context.Background()))
}

func TestDeleteFormsRequireConfirm(t *testing.T) {
	reg, err := Build(stubSource{})
	require.NoError(t, err)

	for _, id := range []string{DeleteCoach, DeleteLocation, DeletePlan, DeletePaymentMethod, DeleteSchedule} {
		def, ok := reg.Get(id)
		require.True(t, ok)
		last := def.Fields[len(def.Fields)-1]
		require.Equal(t, "confirm", last.Name, "form %s", id)

		v, err := last.Validator(context.Background(), "sí")
		require.NoError(t, err)
		require.Equal(t, true, v)

		v, err = last.Validator(context.Background(), "no")
		require.NoError(t, err)
		require.Equal(t, false, v)
	}
}

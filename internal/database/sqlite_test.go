package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/dvconsultores/rhino-bot/bot/forms"
	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/config"

	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *SQLite {
	t.Helper()

	conf := &config.Config{}
	conf.Database.Path = filepath.Join(t.TempDir(), "rhino.db")

	db, err := New(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSQLite(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T, db *SQLite){
		"user round trip":              testUserRoundTrip,
		"payment keeps optional blank": testPaymentOptionals,
		"attendance joins names":       testAttendanceJoins,
		"location user round trip":     testLocationUserRoundTrip,
		"language upserts":             testLanguageUpsert,
		"candidates list per kind":     testCandidateKinds,
		"missing rows return nil":      testMissesReturnNil,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t, testDB(t))
		})
	}
}

func newTestUser(telegramId int64) *entity.User {
	u := entity.NewUser(telegramId)
	u.Name = "Ana"
	u.Lastname = "Lopez"
	u.Cedula = 12345678
	u.Email = "ana@example.com"
	u.DateOfBirth = "1990-12-24"
	u.Phone = 58412000000
	return u
}

func testUserRoundTrip(t *testing.T, db *SQLite) {
	ctx := context.Background()

	user := newTestUser(700)
	require.NoError(t, db.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	got, err := db.GetUserByTelegramId(ctx, 700)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ana", got.Name)
	require.Equal(t, entity.UserTypeCliente, got.Type)
	require.Equal(t, entity.UserStatusActivo, got.Status)

	got.Name = "Ana Maria"
	updated, err := db.UpdateUserByTelegramId(ctx, 700, got)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Ana Maria", updated.Name)

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	deleted, err := db.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = db.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func testPaymentOptionals(t *testing.T, db *SQLite) {
	ctx := context.Background()

	user := newTestUser(700)
	require.NoError(t, db.CreateUser(ctx, user))

	method := &entity.PaymentMethod{Method: "Zelle"}
	require.NoError(t, db.CreatePaymentMethod(ctx, method))

	payment := entity.NewPayment(user.ID, 45.5)
	payment.PaymentMethodId = method.ID
	require.NoError(t, db.CreatePayment(ctx, payment))

	got, err := db.GetPayment(ctx, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 45.5, got.Amount)
	require.Empty(t, got.Reference)
	require.Empty(t, got.ProofPath)
	require.Equal(t, payment.Year, got.Year)
	require.Equal(t, payment.Month, got.Month)
}

func testAttendanceJoins(t *testing.T, db *SQLite) {
	ctx := context.Background()

	user := newTestUser(700)
	require.NoError(t, db.CreateUser(ctx, user))

	location := &entity.Location{Location: "Sede Norte", Address: "Av. Principal"}
	require.NoError(t, db.CreateLocation(ctx, location))

	coach := &entity.Coach{Cedula: "9999", Names: "Pedro Perez", LocationId: location.ID}
	require.NoError(t, db.CreateCoach(ctx, coach))

	att := &entity.Attendance{CoachId: coach.ID, LocationId: location.ID, UserId: user.ID}
	require.NoError(t, db.CreateAttendance(ctx, att))

	list, err := db.ListAttendances(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Pedro Perez", list[0].CoachName)
	require.Equal(t, "Sede Norte", list[0].LocationName)
	require.Contains(t, list[0].UserName, "Ana")

	other := &entity.Location{Location: "Sede Sur", Address: "Calle 2"}
	require.NoError(t, db.CreateLocation(ctx, other))

	att.LocationId = other.ID
	updated, err := db.UpdateAttendance(ctx, att.ID, att)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Sede Sur", updated.LocationName)

	updated, err = db.UpdateAttendance(ctx, 99, att)
	require.NoError(t, err)
	require.Nil(t, updated)
}

func testLocationUserRoundTrip(t *testing.T, db *SQLite) {
	ctx := context.Background()

	user := newTestUser(700)
	require.NoError(t, db.CreateUser(ctx, user))

	location := &entity.Location{Location: "Sede Norte", Address: "Av. Principal"}
	require.NoError(t, db.CreateLocation(ctx, location))

	assignment := &entity.LocationUser{UserId: user.ID, LocationId: location.ID}
	require.NoError(t, db.CreateLocationUser(ctx, assignment))
	require.Equal(t, entity.AssignmentActivo, assignment.Status)

	got, err := db.GetLocationUser(ctx, assignment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, user.ID, got.UserId)

	got.Status = entity.AssignmentInactivo
	updated, err := db.UpdateLocationUser(ctx, assignment.ID, got)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, entity.AssignmentInactivo, updated.Status)

	deleted, err := db.DeleteLocationUser(ctx, assignment.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = db.GetLocationUser(ctx, assignment.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func testLanguageUpsert(t *testing.T, db *SQLite) {
	ctx := context.Background()

	got, err := db.GetLanguage(ctx, 700)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, db.SetLanguage(ctx, 700, entity.LangEnglish))
	got, err = db.GetLanguage(ctx, 700)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, entity.LangEnglish, got.Language)

	require.NoError(t, db.SetLanguage(ctx, 700, entity.LangSpanish))
	got, err = db.GetLanguage(ctx, 700)
	require.NoError(t, err)
	require.Equal(t, entity.LangSpanish, got.Language)
}

func testCandidateKinds(t *testing.T, db *SQLite) {
	ctx := context.Background()

	location := &entity.Location{Location: "Sede Norte", Address: "Av. Principal"}
	require.NoError(t, db.CreateLocation(ctx, location))

	coach := &entity.Coach{Cedula: "9999", Names: "Pedro Perez", LocationId: location.ID}
	require.NoError(t, db.CreateCoach(ctx, coach))

	locations, err := db.ListCandidates(ctx, forms.KindLocations)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	require.Equal(t, location.ID, locations[0].ID)
	require.Equal(t, "Sede Norte", locations[0].Label)

	coaches, err := db.ListCandidates(ctx, forms.KindCoaches)
	require.NoError(t, err)
	require.Len(t, coaches, 1)
	require.Equal(t, "Pedro Perez", coaches[0].Label)

	_, err = db.ListCandidates(ctx, "nonsense")
	require.Error(t, err)
}

func testMissesReturnNil(t *testing.T, db *SQLite) {
	ctx := context.Background()

	user, err := db.GetUser(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, user)

	coach, err := db.GetCoach(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, coach)

	plan, err := db.GetPlan(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, plan)

	updated, err := db.UpdateUserByTelegramId(ctx, 99, newTestUser(99))
	require.NoError(t, err)
	require.Nil(t, updated)
}

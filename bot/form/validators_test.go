package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"non empty trims and refuses blank":  testNonEmpty,
		"integer parses whole numbers":       testInteger,
		"integer range enforces bounds":      testIntegerRange,
		"decimal accepts comma separator":    testDecimal,
		"date normalizes to iso":             testDate,
		"email lowercases and validates":     testEmail,
		"time of day normalizes to hh:mm":    testTimeOfDay,
		"enum resolves canonical token":      testEnum,
		"candidates resolve label or id":     testCandidates,
		"candidates use the caller context":  testCandidatesContext,
		"file ref strips prefix":             testFileRef,
	} {
		t.Run(scenario, fn)
	}
}

func testNonEmpty(t *testing.T) {
	v := NonEmpty()

	got, err := v(context.Background(), "  hola  ")
	require.NoError(t, err)
	require.Equal(t, "hola", got)

	_, err = v(context.Background(), "   ")
	require.EqualError(t, err, ReasonRequired)
}

func testInteger(t *testing.T) {
	v := Integer()

	got, err := v(context.Background(), "1234567")
	require.NoError(t, err)
	require.Equal(t, int64(1234567), got)

	_, err = v(context.Background(), "12.5")
	require.EqualError(t, err, ReasonInvalidNumber)

	_, err = v(context.Background(), "abc")
	require.EqualError(t, err, ReasonInvalidNumber)
}

func testIntegerRange(t *testing.T) {
	v := IntegerRange(1, 12)

	got, err := v(context.Background(), "12")
	require.NoError(t, err)
	require.Equal(t, int64(12), got)

	_, err = v(context.Background(), "0")
	require.EqualError(t, err, ReasonOutOfRange)

	_, err = v(context.Background(), "13")
	require.EqualError(t, err, ReasonOutOfRange)
}

func testDecimal(t *testing.T) {
	v := Decimal()

	got, err := v(context.Background(), "45.50")
	require.NoError(t, err)
	require.Equal(t, 45.5, got)

	got, err = v(context.Background(), "45,50")
	require.NoError(t, err)
	require.Equal(t, 45.5, got)

	_, err = v(context.Background(), "-1")
	require.EqualError(t, err, ReasonInvalidAmount)

	_, err = v(context.Background(), "gratis")
	require.EqualError(t, err, ReasonInvalidAmount)
}

func testDate(t *testing.T) {
	v := Date()

	got, err := v(context.Background(), "24/12/1990")
	require.NoError(t, err)
	require.Equal(t, "1990-12-24", got)

	_, err = v(context.Background(), "1990-12-24")
	require.EqualError(t, err, ReasonInvalidDate)

	_, err = v(context.Background(), "31/02/1990")
	require.EqualError(t, err, ReasonInvalidDate)
}

func testEmail(t *testing.T) {
	v := Email()

	got, err := v(context.Background(), "Ana.Lopez@Example.COM")
	require.NoError(t, err)
	require.Equal(t, "ana.lopez@example.com", got)

	_, err = v(context.Background(), "not-an-email")
	require.EqualError(t, err, ReasonInvalidEmail)
}

func testTimeOfDay(t *testing.T) {
	v := TimeOfDay()

	got, err := v(context.Background(), "8:05")
	require.NoError(t, err)
	require.Equal(t, "08:05", got)

	got, err = v(context.Background(), "17:30")
	require.NoError(t, err)
	require.Equal(t, "17:30", got)

	_, err = v(context.Background(), "25:00")
	require.EqualError(t, err, ReasonInvalidTime)
}

func testEnum(t *testing.T) {
	v := Enum("Lunes", "Martes")

	got, err := v(context.Background(), "lunes")
	require.NoError(t, err)
	require.Equal(t, "Lunes", got)

	_, err = v(context.Background(), "Viernes")
	require.EqualError(t, err, ReasonInvalidOption)
}

type staticSource struct {
	candidates []Candidate
	err        error
	lastCtx    context.Context
}

func (s *staticSource) ListCandidates(ctx context.Context, kind string) ([]Candidate, error) {
	s.lastCtx = ctx
	return s.candidates, s.err
}

func testCandidates(t *testing.T) {
	source := &staticSource{candidates: []Candidate{
		{ID: 1, Label: "Sede Norte"},
		{ID: 2, Label: "Sede Sur"},
	}}
	v := Candidates(source, "locations")

	got, err := v(context.Background(), "Sede Sur")
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	got, err = v(context.Background(), "1: Sede Norte")
	require.NoError(t, err)
	require.Equal(t, int64(1), got)

	got, err = v(context.Background(), "2")
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	_, err = v(context.Background(), "Sede Este")
	require.EqualError(t, err, ReasonInvalidOption)
}

func testCandidatesContext(t *testing.T) {
	source := &staticSource{candidates: []Candidate{{ID: 1, Label: "Sede Norte"}}}
	v := Candidates(source, "locations")

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "update-scoped")

	_, err := v(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "update-scoped", source.lastCtx.Value(ctxKey{}))
}

func testFileRef(t *testing.T) {
	v := FileRef()

	got, err := v(context.Background(), "file:uploads/abc.jpg")
	require.NoError(t, err)
	require.Equal(t, "uploads/abc.jpg", got)

	_, err = v(context.Background(), "just text")
	require.EqualError(t, err, ReasonInvalidFile)
}

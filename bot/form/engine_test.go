package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	formID    string
	subjectID int64
	payload   map[string]any
	calls     int
	err       error
}

func (g *fakeGateway) Submit(ctx context.Context, formID string, subjectID int64, payload map[string]any) (string, error) {
	g.calls++
	g.formID = formID
	g.subjectID = subjectID
	g.payload = payload
	if g.err != nil {
		return "", g.err
	}
	return "done", nil
}

type sentMessage struct {
	kind    string
	key     string
	reason  string
	replies []string
	args    []any
}

type fakeChannel struct {
	sent []sentMessage
}

func (c *fakeChannel) SendPrompt(ctx context.Context, subjectID int64, lang, promptKey string, replies []string) error {
	c.sent = append(c.sent, sentMessage{kind: "prompt", key: promptKey, replies: replies})
	return nil
}

func (c *fakeChannel) SendRejection(ctx context.Context, subjectID int64, lang, reasonKey, promptKey string, replies []string) error {
	c.sent = append(c.sent, sentMessage{kind: "rejection", key: promptKey, reason: reasonKey, replies: replies})
	return nil
}

func (c *fakeChannel) SendNotice(ctx context.Context, subjectID int64, lang, noticeKey string, args ...any) error {
	c.sent = append(c.sent, sentMessage{kind: "notice", key: noticeKey, args: args})
	return nil
}

func (c *fakeChannel) last() sentMessage {
	return c.sent[len(c.sent)-1]
}

type harness struct {
	engine  *Engine
	store   *CacheStore
	gateway *fakeGateway
	channel *fakeChannel
}

func TestEngine(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T, h *harness){
		"completed form submits collected payload": testEngineSubmit,
		"rejection re-prompts without advancing":   testEngineRejection,
		"cancel keyword wins over validation":      testEngineCancel,
		"skip stores default on optional only":     testEngineSkip,
		"failed submission still clears session":   testEngineSubmitFailure,
		"second start reports active form":         testEngineAlreadyActive,
		"input without session is not consumed":    testEngineNoSession,
		"unknown form cannot start":                testEngineUnknownForm,
	} {
		t.Run(scenario, func(t *testing.T) {
			reg, err := NewRegistry(Definition{
				ID: "enroll",
				Fields: []Field{
					{Name: "name", Prompt: "ask_name", Validator: NonEmpty()},
					{Name: "age", Prompt: "ask_age", Validator: IntegerRange(10, 99)},
					{Name: "nick", Prompt: "ask_nick", Validator: NonEmpty(), Optional: true, Default: "none"},
				},
			})
			require.NoError(t, err)

			h := &harness{
				store:   NewCacheStore(time.Minute),
				gateway: &fakeGateway{},
				channel: &fakeChannel{},
			}
			h.engine = NewEngine(reg, h.store, h.gateway, h.channel, slog.New(slog.NewTextHandler(io.Discard, nil)))

			fn(t, h)
		})
	}
}

func feed(t *testing.T, h *harness, input string) {
	t.Helper()
	consumed, err := h.engine.SubmitInput(context.Background(), 7, "es", input)
	require.NoError(t, err)
	require.True(t, consumed)
}

func testEngineSubmit(t *testing.T, h *harness) {
	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))
	require.Equal(t, "prompt", h.channel.last().kind)
	require.Equal(t, "ask_name", h.channel.last().key)

	feed(t, h, "Ana")
	require.Equal(t, "ask_age", h.channel.last().key)

	feed(t, h, "33")
	feed(t, h, "anita")

	require.Equal(t, 1, h.gateway.calls)
	require.Equal(t, "enroll", h.gateway.formID)
	require.Equal(t, int64(7), h.gateway.subjectID)
	require.Equal(t, map[string]any{"name": "Ana", "age": int64(33), "nick": "anita"}, h.gateway.payload)

	require.Equal(t, "notice", h.channel.last().kind)
	require.Equal(t, NoticeSubmitted, h.channel.last().key)
	require.Equal(t, []any{"done"}, h.channel.last().args)

	require.False(t, h.engine.Active(7))
}

func testEngineRejection(t *testing.T, h *harness) {
	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))
	feed(t, h, "Ana")

	feed(t, h, "not a number")
	require.Equal(t, "rejection", h.channel.last().kind)
	require.Equal(t, ReasonInvalidNumber, h.channel.last().reason)
	require.Equal(t, "ask_age", h.channel.last().key)

	feed(t, h, "200")
	require.Equal(t, ReasonOutOfRange, h.channel.last().reason)

	// Still on the same step: a valid value now advances.
	sess := h.store.Get(7)
	require.Equal(t, 1, sess.StepIndex)
	require.Equal(t, map[string]any{"name": "Ana"}, sess.Payload())

	feed(t, h, "33")
	require.Equal(t, "ask_nick", h.channel.last().key)
}

func testEngineCancel(t *testing.T, h *harness) {
	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))
	feed(t, h, "Ana")

	// "cancelar" inside a numeric field is a cancellation, not a rejection.
	feed(t, h, "cancelar")
	require.Equal(t, "notice", h.channel.last().kind)
	require.Equal(t, NoticeCancelled, h.channel.last().key)
	require.False(t, h.engine.Active(7))
	require.Zero(t, h.gateway.calls)
}

func testEngineSkip(t *testing.T, h *harness) {
	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))

	// Required field refuses the skip keyword.
	feed(t, h, "omitir")
	require.Equal(t, "rejection", h.channel.last().kind)
	require.Equal(t, ReasonSkipNotAllowed, h.channel.last().reason)

	feed(t, h, "Ana")
	feed(t, h, "33")

	// Optional field offers the skip reply and stores the default.
	require.Contains(t, h.channel.last().replies, "skip")
	feed(t, h, "skip")

	require.Equal(t, 1, h.gateway.calls)
	require.Equal(t, "none", h.gateway.payload["nick"])
}

func testEngineSubmitFailure(t *testing.T, h *harness) {
	h.gateway.err = errors.New("storage down")

	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))
	feed(t, h, "Ana")
	feed(t, h, "33")
	feed(t, h, "anita")

	require.Equal(t, "notice", h.channel.last().kind)
	require.Equal(t, NoticeSubmitFailed, h.channel.last().key)

	// No partial payload survives a failed submission.
	require.False(t, h.engine.Active(7))
}

func testEngineAlreadyActive(t *testing.T, h *harness) {
	require.NoError(t, h.engine.StartForm(context.Background(), 7, "es", "enroll"))

	err := h.engine.StartForm(context.Background(), 7, "es", "enroll")
	require.ErrorIs(t, err, ErrAlreadyActive)

	// Another subject is unaffected.
	require.NoError(t, h.engine.StartForm(context.Background(), 8, "es", "enroll"))
}

func testEngineNoSession(t *testing.T, h *harness) {
	consumed, err := h.engine.SubmitInput(context.Background(), 7, "es", "hola")
	require.NoError(t, err)
	require.False(t, consumed)
	require.Empty(t, h.channel.sent)
}

func testEngineUnknownForm(t *testing.T, h *harness) {
	err := h.engine.StartForm(context.Background(), 7, "es", "missing")
	require.ErrorIs(t, err, ErrUnknownForm)
}

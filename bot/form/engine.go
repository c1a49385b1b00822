package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dvconsultores/rhino-bot/internal/lib/sl"
)

// Notice keys emitted at terminal transitions.
const (
	NoticeCancelled    = "form_cancelled"
	NoticeSubmitted    = "form_submitted"
	NoticeSubmitFailed = "form_submit_failed"
)

// Engine drives declarative forms one message at a time. It owns no transport
// and no persistence beyond the session store; everything else is reached
// through the interfaces it is built with.
type Engine struct {
	forms   *Registry
	store   Store
	gateway Gateway
	channel Channel
	log     *slog.Logger

	cancelWords []string
	skipWords   []string
}

func NewEngine(forms *Registry, store Store, gateway Gateway, channel Channel, log *slog.Logger) *Engine {
	return &Engine{
		forms:       forms,
		store:       store,
		gateway:     gateway,
		channel:     channel,
		log:         log.With(sl.Module("form.engine")),
		cancelWords: []string{"cancelar", "cancel"},
		skipWords:   []string{"omitir", "skip"},
	}
}

// StartForm opens a session for the subject and prompts the first field.
// Returns ErrAlreadyActive when a form is in progress; the caller decides
// whether to cancel the old session and retry.
func (e *Engine) StartForm(ctx context.Context, subjectID int64, lang, formID string) error {
	def, ok := e.forms.Get(formID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownForm, formID)
	}
	if _, err := e.store.Start(subjectID, formID, def.fieldNames()); err != nil {
		return err
	}

	e.log.Info("form started",
		slog.Int64("subject_id", subjectID),
		slog.String("form_id", formID),
	)
	return e.prompt(ctx, subjectID, lang, def.Fields[0])
}

// Active reports whether the subject has a form in progress.
func (e *Engine) Active(subjectID int64) bool {
	return e.store.Get(subjectID) != nil
}

// Cancel clears any in-progress form without messaging the subject.
func (e *Engine) Cancel(subjectID int64) {
	e.store.Clear(subjectID)
}

// SubmitInput feeds one inbound message into the subject's active form.
// The boolean reports whether the message was consumed; false means no form
// is active and the caller's routing decides what the message means.
func (e *Engine) SubmitInput(ctx context.Context, subjectID int64, lang, raw string) (bool, error) {
	sess := e.store.Get(subjectID)
	if sess == nil {
		return false, nil
	}

	def, ok := e.forms.Get(sess.FormID)
	if !ok {
		// A session for a form that no longer exists is unrecoverable.
		e.store.Clear(subjectID)
		return true, fmt.Errorf("%w: %s", ErrUnknownForm, sess.FormID)
	}

	input := strings.TrimSpace(raw)

	// The cancel keyword wins over validation on every step, so cancelling
	// inside a numeric field is never rejected as "not a number".
	if matchKeyword(input, e.cancelWords) {
		e.store.Clear(subjectID)
		e.log.Info("form cancelled",
			slog.Int64("subject_id", subjectID),
			slog.String("form_id", sess.FormID),
		)
		return true, e.channel.SendNotice(ctx, subjectID, lang, NoticeCancelled)
	}

	field := def.Fields[sess.StepIndex]

	var value any
	if matchKeyword(input, e.skipWords) {
		if !field.Optional {
			return true, e.reject(ctx, subjectID, lang, ReasonSkipNotAllowed, field)
		}
		value = field.Default
	} else {
		v, rejected := field.Validator(ctx, input)
		if rejected != nil {
			// Session untouched: same step, same collected values.
			return true, e.reject(ctx, subjectID, lang, rejected.Error(), field)
		}
		value = v
	}

	sess, err := e.store.Update(subjectID, field.Name, value)
	if err != nil {
		return true, err
	}

	if sess.Done() {
		return true, e.submit(ctx, subjectID, lang, sess)
	}
	return true, e.prompt(ctx, subjectID, lang, def.Fields[sess.StepIndex])
}

func (e *Engine) submit(ctx context.Context, subjectID int64, lang string, sess *Session) error {
	// The session is cleared whatever the gateway says: failed submissions are
	// never retried with a partial payload, the user restarts the form.
	defer e.store.Clear(subjectID)

	confirmation, err := e.gateway.Submit(ctx, sess.FormID, subjectID, sess.Payload())
	if err != nil {
		e.log.Error("form submission failed",
			slog.Int64("subject_id", subjectID),
			slog.String("form_id", sess.FormID),
			sl.Err(err),
		)
		return e.channel.SendNotice(ctx, subjectID, lang, NoticeSubmitFailed)
	}

	e.log.Info("form submitted",
		slog.Int64("subject_id", subjectID),
		slog.String("form_id", sess.FormID),
	)
	return e.channel.SendNotice(ctx, subjectID, lang, NoticeSubmitted, confirmation)
}

func (e *Engine) prompt(ctx context.Context, subjectID int64, lang string, field Field) error {
	return e.channel.SendPrompt(ctx, subjectID, lang, field.Prompt, e.replies(ctx, field))
}

func (e *Engine) reject(ctx context.Context, subjectID int64, lang, reason string, field Field) error {
	return e.channel.SendRejection(ctx, subjectID, lang, reason, field.Prompt, e.replies(ctx, field))
}

// replies resolves the quick replies offered with a field's prompt. Optional
// fields additionally offer the skip button; the channel appends cancel.
func (e *Engine) replies(ctx context.Context, field Field) []string {
	var replies []string
	if field.DynamicReplies != nil {
		replies = field.DynamicReplies(ctx)
	} else {
		replies = append(replies, field.Replies...)
	}
	if field.Optional {
		replies = append(replies, "skip")
	}
	return replies
}

func matchKeyword(input string, words []string) bool {
	for _, w := range words {
		if strings.EqualFold(input, w) {
			return true
		}
	}
	return false
}

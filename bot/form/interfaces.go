package form

import (
	"context"
	"errors"
)

// Errors returned by the session store. They signal integration mistakes in the
// hosting bot, not user-input problems; user input never produces these.
var (
	ErrAlreadyActive   = errors.New("a form is already active for this subject")
	ErrNoActiveSession = errors.New("no active form session for this subject")
	ErrStepMismatch    = errors.New("field does not match the current step")
	ErrUnknownForm     = errors.New("form not registered")
)

// Validator turns raw message text into a typed value. A non-nil error means the
// input was rejected; its message is a catalog key resolved by the channel before
// it reaches the user. Validators are total over all string inputs and never
// panic. The context is the one the submitting update arrived with, so
// validators that hit the repository honor its deadline.
type Validator func(ctx context.Context, raw string) (any, error)

// Candidate is one selectable entity offered by enum-style fields.
type Candidate struct {
	ID    int64
	Label string
}

// CandidateSource lists the entities a selection field may resolve to
// (coaches, locations, plans, payment methods, ...).
type CandidateSource interface {
	ListCandidates(ctx context.Context, kind string) ([]Candidate, error)
}

// Gateway persists a completed form. The returned string is a short description
// of the created or updated record, used only to compose the success message.
type Gateway interface {
	Submit(ctx context.Context, formID string, subjectID int64, payload map[string]any) (string, error)
}

// Channel delivers prompts and notices to the subject. Implementations own
// transport concerns: markup escaping, keyboard rendering and the localized
// cancel button. Reply entries may be catalog keys or literal labels.
type Channel interface {
	// SendPrompt asks the subject for the current field.
	SendPrompt(ctx context.Context, subjectID int64, lang, promptKey string, replies []string) error

	// SendRejection tells the subject why input was refused and repeats the
	// field's original prompt, as a single message.
	SendRejection(ctx context.Context, subjectID int64, lang, reasonKey, promptKey string, replies []string) error

	// SendNotice delivers a terminal acknowledgment (cancelled, submitted, failed).
	SendNotice(ctx context.Context, subjectID int64, lang, noticeKey string, args ...any) error
}

// Store keeps at most one active session per subject.
type Store interface {
	// Start creates a session; ErrAlreadyActive if one exists for the subject.
	Start(subjectID int64, formID string, fieldNames []string) (*Session, error)

	// Get returns the active session, or nil when none exists or it idled out.
	Get(subjectID int64) *Session

	// Update records an accepted value and advances the cursor. The field name
	// must match the field at the current step.
	Update(subjectID int64, fieldName string, value any) (*Session, error)

	// Clear removes any session for the subject. Idempotent.
	Clear(subjectID int64)
}

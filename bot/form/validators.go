package form

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rejection reason keys. The channel resolves them to user-language text.
const (
	ReasonRequired       = "reject_required"
	ReasonInvalidNumber  = "reject_invalid_number"
	ReasonOutOfRange     = "reject_out_of_range"
	ReasonInvalidAmount  = "reject_invalid_amount"
	ReasonInvalidDate    = "reject_invalid_date"
	ReasonInvalidEmail   = "reject_invalid_email"
	ReasonInvalidTime    = "reject_invalid_time"
	ReasonInvalidOption  = "reject_invalid_option"
	ReasonInvalidFile    = "reject_invalid_file"
	ReasonSkipNotAllowed = "reject_skip_not_allowed"
)

var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)

// FileRefPrefix marks values produced by the bot's media download path rather
// than typed by the user.
const FileRefPrefix = "file:"

// NonEmpty accepts any text with at least one non-space character.
func NonEmpty() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.TrimSpace(raw)
		if v == "" {
			return nil, errors.New(ReasonRequired)
		}
		return v, nil
	}
}

// Integer accepts digit-only input.
func Integer() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, errors.New(ReasonInvalidNumber)
		}
		return n, nil
	}
}

// IntegerRange accepts digit-only input within [min, max].
func IntegerRange(min, max int64) Validator {
	inner := Integer()
	return func(ctx context.Context, raw string) (any, error) {
		v, err := inner(ctx, raw)
		if err != nil {
			return nil, err
		}
		n := v.(int64)
		if n < min || n > max {
			return nil, errors.New(ReasonOutOfRange)
		}
		return n, nil
	}
}

// Decimal accepts a positive amount, with either decimal separator and no
// currency symbols.
func Decimal() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, errors.New(ReasonInvalidAmount)
		}
		return f, nil
	}
}

// Date accepts DD/MM/YYYY and normalizes to ISO YYYY-MM-DD.
func Date() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		t, err := time.Parse("02/01/2006", strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.New(ReasonInvalidDate)
		}
		return t.Format("2006-01-02"), nil
	}
}

// Email accepts a conventional local@domain.tld address, lowercased.
func Email() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.ToLower(strings.TrimSpace(raw))
		if !emailPattern.MatchString(v) {
			return nil, errors.New(ReasonInvalidEmail)
		}
		return v, nil
	}
}

// TimeOfDay accepts H:MM or HH:MM and normalizes to HH:MM.
func TimeOfDay() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.TrimSpace(raw)
		t, err := time.Parse("15:04", v)
		if err != nil {
			if t, err = time.Parse("3:04", v); err != nil {
				return nil, errors.New(ReasonInvalidTime)
			}
		}
		return t.Format("15:04"), nil
	}
}

// Enum accepts one of the given tokens, case-insensitively, returning the
// canonical spelling.
func Enum(tokens ...string) Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.TrimSpace(raw)
		for _, tok := range tokens {
			if strings.EqualFold(v, tok) {
				return tok, nil
			}
		}
		return nil, errors.New(ReasonInvalidOption)
	}
}

// Candidates resolves input against the entities the source lists for kind.
// It matches the "id: label" form the keyboards offer, a bare label, or a bare
// numeric id, and yields the candidate's id.
func Candidates(source CandidateSource, kind string) Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.TrimSpace(raw)
		if v == "" {
			return nil, errors.New(ReasonInvalidOption)
		}
		list, err := source.ListCandidates(ctx, kind)
		if err != nil {
			return nil, errors.New(ReasonInvalidOption)
		}
		for _, c := range list {
			if strings.EqualFold(v, c.Label) ||
				strings.EqualFold(v, CandidateLabel(c)) ||
				v == strconv.FormatInt(c.ID, 10) {
				return c.ID, nil
			}
		}
		return nil, errors.New(ReasonInvalidOption)
	}
}

// CandidateLabel renders a candidate the way selection keyboards display it.
func CandidateLabel(c Candidate) string {
	return fmt.Sprintf("%d: %s", c.ID, c.Label)
}

// FileRef accepts tokens produced by the media download path ("file:<path>")
// and yields the stored path. Typed text is rejected.
func FileRef() Validator {
	return func(ctx context.Context, raw string) (any, error) {
		v := strings.TrimSpace(raw)
		if !strings.HasPrefix(v, FileRefPrefix) || len(v) == len(FileRefPrefix) {
			return nil, errors.New(ReasonInvalidFile)
		}
		return strings.TrimPrefix(v, FileRefPrefix), nil
	}
}

package form

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Session is the mutable per-subject record of a form in progress. Collected
// holds exactly the values for steps 0..StepIndex-1; FieldNames fixes the step
// order at start time.
type Session struct {
	SubjectID  int64
	FormID     string
	StepIndex  int
	Collected  map[string]any
	FieldNames []string
	StartedAt  time.Time
	UpdatedAt  time.Time
}

// Done reports whether every declared field has been collected.
func (s *Session) Done() bool {
	return s.StepIndex >= len(s.FieldNames)
}

// Payload returns a copy of the collected values for submission.
func (s *Session) Payload() map[string]any {
	payload := make(map[string]any, len(s.Collected))
	for k, v := range s.Collected {
		payload[k] = v
	}
	return payload
}

// CacheStore keeps sessions in memory with an idle timeout: a session that
// sees no activity for the configured duration is treated as already cleared.
type CacheStore struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewCacheStore creates a session store expiring sessions after idle inactivity.
func NewCacheStore(idle time.Duration) *CacheStore {
	cleanup := idle / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &CacheStore{
		c:   gocache.New(idle, cleanup),
		ttl: idle,
	}
}

func sessionKey(subjectID int64) string {
	return strconv.FormatInt(subjectID, 10)
}

// Start creates a session for the subject.
func (s *CacheStore) Start(subjectID int64, formID string, fieldNames []string) (*Session, error) {
	key := sessionKey(subjectID)
	if _, active := s.c.Get(key); active {
		return nil, ErrAlreadyActive
	}
	now := time.Now()
	sess := &Session{
		SubjectID:  subjectID,
		FormID:     formID,
		Collected:  make(map[string]any, len(fieldNames)),
		FieldNames: fieldNames,
		StartedAt:  now,
		UpdatedAt:  now,
	}
	s.c.Set(key, sess, gocache.DefaultExpiration)
	return sess, nil
}

// Get returns the active session or nil.
func (s *CacheStore) Get(subjectID int64) *Session {
	v, ok := s.c.Get(sessionKey(subjectID))
	if !ok {
		return nil
	}
	return v.(*Session)
}

// Update stores an accepted value under fieldName and advances the cursor,
// refreshing the idle timeout.
func (s *CacheStore) Update(subjectID int64, fieldName string, value any) (*Session, error) {
	sess := s.Get(subjectID)
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if sess.Done() || sess.FieldNames[sess.StepIndex] != fieldName {
		return nil, ErrStepMismatch
	}
	sess.Collected[fieldName] = value
	sess.StepIndex++
	sess.UpdatedAt = time.Now()
	s.c.Set(sessionKey(subjectID), sess, gocache.DefaultExpiration)
	return sess, nil
}

// Clear removes any session for the subject. Safe to call repeatedly.
func (s *CacheStore) Clear(subjectID int64) {
	s.c.Delete(sessionKey(subjectID))
}

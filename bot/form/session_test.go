package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheStore(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"start get update clear lifecycle": testStoreLifecycle,
		"second start is refused":          testStoreAlreadyActive,
		"update checks the expected field": testStoreStepMismatch,
		"clear is idempotent":              testStoreClearIdempotent,
		"idle sessions expire":             testStoreIdleExpiry,
	} {
		t.Run(scenario, fn)
	}
}

func testStoreLifecycle(t *testing.T) {
	store := NewCacheStore(time.Minute)

	sess, err := store.Start(7, "enroll", []string{"name", "age"})
	require.NoError(t, err)
	require.Equal(t, 0, sess.StepIndex)
	require.False(t, sess.Done())

	sess, err = store.Update(7, "name", "Ana")
	require.NoError(t, err)
	require.Equal(t, 1, sess.StepIndex)

	sess, err = store.Update(7, "age", int64(33))
	require.NoError(t, err)
	require.True(t, sess.Done())
	require.Equal(t, map[string]any{"name": "Ana", "age": int64(33)}, sess.Payload())

	store.Clear(7)
	require.Nil(t, store.Get(7))
}

func testStoreAlreadyActive(t *testing.T) {
	store := NewCacheStore(time.Minute)

	_, err := store.Start(7, "enroll", []string{"name"})
	require.NoError(t, err)

	_, err = store.Start(7, "enroll", []string{"name"})
	require.ErrorIs(t, err, ErrAlreadyActive)

	_, err = store.Start(8, "enroll", []string{"name"})
	require.NoError(t, err)
}

func testStoreStepMismatch(t *testing.T) {
	store := NewCacheStore(time.Minute)

	_, err := store.Start(7, "enroll", []string{"name", "age"})
	require.NoError(t, err)

	_, err = store.Update(7, "age", int64(33))
	require.ErrorIs(t, err, ErrStepMismatch)

	_, err = store.Update(9, "name", "Ana")
	require.ErrorIs(t, err, ErrNoActiveSession)
}

func testStoreClearIdempotent(t *testing.T) {
	store := NewCacheStore(time.Minute)

	store.Clear(7)

	_, err := store.Start(7, "enroll", []string{"name"})
	require.NoError(t, err)
	store.Clear(7)
	store.Clear(7)
	require.Nil(t, store.Get(7))
}

func testStoreIdleExpiry(t *testing.T) {
	store := NewCacheStore(20 * time.Millisecond)

	_, err := store.Start(7, "enroll", []string{"name"})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	require.Nil(t, store.Get(7))

	// An expired session no longer blocks a fresh start.
	_, err = store.Start(7, "enroll", []string{"name"})
	require.NoError(t, err)
}

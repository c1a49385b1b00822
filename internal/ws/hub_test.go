package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dvconsultores/rhino-bot/entity"
)

func testHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	return hub
}

func recv(t *testing.T, ch chan []byte) ([]byte, bool) {
	t.Helper()

	select {
	case data, ok := <-ch:
		return data, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting on client send channel")
		return nil, false
	}
}

func TestHub(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"broadcast reaches connected clients": testBroadcastReachesClients,
		"stalled client gets evicted":         testStalledClientEvicted,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t)
		})
	}
}

func testBroadcastReachesClients(t *testing.T) {
	hub := testHub(t)

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- client

	hub.BroadcastPayment(entity.Payment{ID: 7, Amount: 120})

	data, ok := recv(t, client.send)
	require.True(t, ok)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	require.Equal(t, "payment_recorded", event.Type)
}

func testStalledClientEvicted(t *testing.T) {
	hub := testHub(t)

	good := &Client{hub: hub, send: make(chan []byte, 4)}
	stalled := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- good
	hub.register <- stalled

	hub.BroadcastAttendance(entity.Attendance{ID: 1})

	_, ok := recv(t, good.send)
	require.True(t, ok)

	// The stalled client never drains its channel, so the hub closes it.
	_, ok = recv(t, stalled.send)
	require.False(t, ok)

	// The surviving client keeps receiving events.
	hub.BroadcastAttendance(entity.Attendance{ID: 2})
	_, ok = recv(t, good.send)
	require.True(t, ok)
}

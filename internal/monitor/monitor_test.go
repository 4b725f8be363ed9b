package monitor

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/service"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/upstream"
)

func newTestMonitor(t *testing.T, fail *atomic.Bool) *Monitor {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail != nil && fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/api/monitor/conexiones":
			fmt.Fprint(w, `{"data":[{"_id":"s1","usuarioPPPoE":"user01","ip":"10.10.0.5","servidor":"RB-Centro"}]}`)
		case "/api/alerts":
			fmt.Fprint(w, `[{"_id":"a1","tipo":"warning","mensaje":"CPU alta","read":false}]`)
		case "/api/dashboard/stats":
			fmt.Fprint(w, `{"totalClients":12,"activeContracts":9,"monthlyRevenue":1250.5}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	log := logger.NewWithOutput(io.Discard)
	svc := service.New(upstream.New(srv.URL, log, nil), log)
	return New(svc, log, nil, time.Minute)
}

func TestPoll_PopulatesSnapshot(t *testing.T) {
	m := newTestMonitor(t, nil)

	_, ok := m.Snapshot()
	assert.False(t, ok, "no snapshot before the first poll")

	m.poll()

	snap, ok := m.Snapshot()
	require.True(t, ok)
	require.Len(t, snap.Connections, 1)
	assert.Equal(t, "user01", snap.Connections[0].PPPoEUsername)
	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, "CPU alta", snap.Alerts[0].Message)
	assert.Equal(t, 12, snap.Stats.TotalClients)
	assert.Equal(t, uint64(1), snap.Seq)
}

func TestPoll_FailureKeepsPreviousSnapshot(t *testing.T) {
	var fail atomic.Bool
	m := newTestMonitor(t, &fail)

	m.poll()
	first, ok := m.Snapshot()
	require.True(t, ok)

	fail.Store(true)
	m.poll()

	second, ok := m.Snapshot()
	require.True(t, ok)
	assert.Equal(t, first.Seq, second.Seq, "a failed poll must not blank the view")
	assert.Equal(t, first.Connections, second.Connections)
}

func TestPoll_StaleResultNeverOverwritesNewer(t *testing.T) {
	m := newTestMonitor(t, nil)

	// pretend a later poll already landed while this one was in flight
	m.mu.Lock()
	m.snap = Snapshot{Seq: 5, PolledAt: time.Now()}
	m.has = true
	m.mu.Unlock()
	m.seq.Store(0) // the next poll draws seq 1, older than the stored 5

	m.poll()

	current, _ := m.Snapshot()
	assert.Equal(t, uint64(5), current.Seq, "stale poll results are dropped")
}

func TestStartStop(t *testing.T) {
	m := newTestMonitor(t, nil)

	require.NoError(t, m.Start())
	assert.True(t, m.Running())
	require.NoError(t, m.Start(), "starting twice is a no-op")

	// the immediate poll runs on a goroutine; wait for it
	deadline := time.After(2 * time.Second)
	for {
		if _, ok := m.Snapshot(); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no snapshot after Start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	m.Stop()
	assert.False(t, m.Running())
	m.Stop() // idempotent

	_, ok := m.Snapshot()
	assert.True(t, ok, "last snapshot survives teardown")
}

// Package monitor drives the live connection view. There is no push
// channel from the routers; the monitor polls the upstream API on a
// fixed schedule and keeps the latest snapshot for the console to serve.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/service"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/redis"
)

const (
	snapshotCacheKey = "monitor:snapshot"
	pollTimeout      = 30 * time.Second
)

// Snapshot is one complete poll result. Seq increases monotonically with
// each poll that started; a slow poll that finishes after a newer one is
// discarded rather than allowed to overwrite fresher data.
type Snapshot struct {
	Seq         uint64                    `json:"seq"`
	PolledAt    time.Time                 `json:"polledAt"`
	Connections []models.ActiveConnection `json:"connections"`
	Alerts      []models.Alert            `json:"alerts"`
	Stats       models.DashboardStats     `json:"stats"`
}

type Monitor struct {
	svc      *service.Service
	log      *logger.Logger
	cache    *redis.Client // optional snapshot mirror
	interval time.Duration

	cron    *cron.Cron
	entryID cron.EntryID
	seq     atomic.Uint64

	mu      sync.RWMutex
	running bool
	snap    Snapshot
	has     bool
}

func New(svc *service.Service, log *logger.Logger, cache *redis.Client, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		svc:      svc,
		log:      log,
		cache:    cache,
		interval: interval,
	}
}

// Start enables polling: one poll right away, then one per interval.
// Calling Start on a running monitor is a no-op.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}

	m.cron = cron.New()
	entryID, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.interval), m.poll)
	if err != nil {
		return fmt.Errorf("schedule monitor poll: %w", err)
	}
	m.entryID = entryID
	m.cron.Start()
	m.running = true

	m.log.Info("connection monitor started", "interval", m.interval.String())
	go m.poll()
	return nil
}

// Stop disables polling and waits for any in-flight poll to finish. The
// last snapshot stays available after teardown.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	c := m.cron
	m.cron = nil
	m.mu.Unlock()

	<-c.Stop().Done()
	m.log.Info("connection monitor stopped")
}

func (m *Monitor) Running() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// Snapshot returns the latest poll result, if one exists yet.
func (m *Monitor) Snapshot() (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap, m.has
}

func (m *Monitor) poll() {
	seq := m.seq.Add(1)

	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	connections, err := m.svc.ListActiveConnections(ctx)
	if err != nil {
		// keep serving the previous snapshot instead of blanking the view
		m.log.Warn("monitor poll failed, keeping previous snapshot", "seq", seq, "error", err.Error())
		return
	}

	alerts, err := m.svc.ListAlerts(ctx)
	if err != nil {
		alerts = []models.Alert{}
	}

	stats, err := m.svc.GetDashboardStats(ctx)
	if err != nil {
		stats = models.DashboardStats{}
	}

	snap := Snapshot{
		Seq:         seq,
		PolledAt:    time.Now(),
		Connections: connections,
		Alerts:      alerts,
		Stats:       stats,
	}

	m.mu.Lock()
	if m.has && m.snap.Seq >= seq {
		m.mu.Unlock()
		m.log.Debug("monitor poll superseded, dropping result", "seq", seq)
		return
	}
	m.snap = snap
	m.has = true
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.SetJSON(ctx, snapshotCacheKey, snap, 2*m.interval); err != nil {
			m.log.Debug("monitor snapshot cache write failed", "error", err.Error())
		}
	}

	m.log.Debug("monitor poll completed", "seq", seq, "connections", len(connections), "alerts", len(alerts))
}

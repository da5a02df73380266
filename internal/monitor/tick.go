package monitor

import (
	"time"

	"go.uber.org/zap"

	"network-canary/internal/models"
)

// run executes ticks at the fixed interval until the context is cancelled.
// The sleep between probes is the interruptible part of a tick; a probe or
// notification already in flight runs to completion.
func (m *Monitor) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.safeTick()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.safeTick()
		}
	}
}

// safeTick absorbs anything unexpected a tick throws; the loop must outlive
// every recoverable error.
func (m *Monitor) safeTick() {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tick failed", zap.Any("panic", r))
		}
	}()
	m.tick()
}

// tick runs one probe and advances the state machine.
func (m *Monitor) tick() {
	result, err := m.pinger.Ping(m.target, m.timeout)
	if err != nil {
		// Mechanism failure, not a probe verdict. Logged as a side note
		// and counted as unreachable.
		m.logger.Warn("probe error",
			zap.String("target", m.target),
			zap.Error(err))
	}

	now := result.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	if result.Success {
		if m.state == models.StateDown {
			m.restored(now)
			return
		}
		m.reporter.StillUp(result)
		return
	}

	if m.state == models.StateUp {
		m.state = models.StateDown
		m.downSince = now
		m.reporter.UnreachableSince(now)
		m.logger.Info("target unreachable",
			zap.String("target", m.target),
			zap.Time("since", now))
		return
	}

	m.reporter.StillDown(now, now.Sub(m.downSince))
}

// restored handles the down -> up transition: report, notify best-effort,
// clear the outage marker.
func (m *Monitor) restored(now time.Time) {
	outage := models.Outage{Start: m.downSince, End: now}
	m.state = models.StateUp
	m.downSince = time.Time{}

	m.reporter.ReachableAgain(now, outage)
	m.logger.Info("target reachable again",
		zap.String("target", m.target),
		zap.Duration("downtime", outage.Duration()))

	if err := m.notifier.Notify(outage); err != nil {
		m.logger.Warn("notification failed", zap.Error(err))
		return
	}
	m.logger.Info("notification sent", zap.Duration("downtime", outage.Duration()))
}

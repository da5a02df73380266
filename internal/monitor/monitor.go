package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"network-canary/internal/config"
	"network-canary/internal/models"
)

// Monitor owns the reachability state machine and drives the probe loop.
// State is touched only by the loop goroutine; there is no other writer.
type Monitor struct {
	target   string
	interval time.Duration
	timeout  time.Duration

	pinger   models.Pinger
	notifier models.Notifier
	reporter models.StatusReporter
	logger   *zap.Logger

	state     models.State
	downSince time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Monitor. The initial state is up; the first failed probe is
// what opens an outage.
func New(cfg config.Config, pinger models.Pinger, notifier models.Notifier, reporter models.StatusReporter, logger *zap.Logger) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		target:   cfg.Target,
		interval: cfg.Interval(),
		timeout:  cfg.Timeout(),
		pinger:   pinger,
		notifier: notifier,
		reporter: reporter,
		logger:   logger,
		state:    models.StateUp,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the probe loop.
func (m *Monitor) Start() {
	m.wg.Add(1)
	go m.run()
	m.logger.Info("monitor started",
		zap.String("target", m.target),
		zap.Duration("interval", m.interval),
		zap.Duration("timeout", m.timeout))
}

// Stop requests the loop to terminate. No final notification is sent, even
// when the target is currently down.
func (m *Monitor) Stop() {
	m.cancel()
}

// Wait blocks until the loop goroutine has exited.
func (m *Monitor) Wait() {
	m.wg.Wait()
	m.logger.Info("monitor stopped")
}

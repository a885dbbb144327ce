package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

// Poller is the background refresh task: on every tick it fetches the
// current snapshot through the crypto channel, flattens it, and publishes
// the resulting tag mapping. Foreground readers always see the most
// recently published mapping and never trigger a fetch themselves.
//
// Ticks run on one goroutine, so a tick still in flight when the next is
// due simply delays it; ticks never overlap. A failed tick keeps the
// previous mapping and is reported through the log and the poll-failure
// counter, never to a reader.
type Poller struct {
	source CryptoChannel
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	parent context.Context
	period time.Duration

	stateMu  sync.RWMutex
	mapping  models.TagMapping
	snapshot models.Snapshot
}

// NewPoller creates a Poller reading from source every period. The poller
// is idle until Start is called.
func NewPoller(source CryptoChannel, period time.Duration, log *logger.Logger) *Poller {
	if period <= 0 {
		period = time.Second
	}
	return &Poller{source: source, period: period, logger: log}
}

// Start stops any previously running task, runs one immediate refresh, then
// refreshes every period until ctx is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.parent = ctx
	period := p.period
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.refresh(pollCtx)

		t := time.NewTicker(period)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				p.refresh(pollCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited: after Stop returns, no further tick executes. Safe to call when
// the poller is not running.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// SetPeriod changes the poll period. A running poller is restarted with the
// new period; an idle one picks it up on the next Start.
func (p *Poller) SetPeriod(period time.Duration) {
	p.mu.Lock()
	p.period = period
	running := p.cancel != nil
	parent := p.parent
	p.mu.Unlock()

	if running {
		p.Start(parent)
	}
}

// Mapping returns the most recently published tag mapping. The mapping is
// replaced wholesale on publication and must be treated as read-only.
func (p *Poller) Mapping() models.TagMapping {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.mapping
}

// Tag returns one record from the published mapping.
func (p *Poller) Tag(name string) (models.TagRecord, bool) {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	rec, ok := p.mapping[name]
	return rec, ok
}

// Snapshot returns the most recently published decoded snapshot.
func (p *Poller) Snapshot() models.Snapshot {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.snapshot
}

// refresh executes one fetch → decode → publish cycle. Failures leave the
// previously published state untouched.
func (p *Poller) refresh(ctx context.Context) {
	metricPollTicks.Inc()

	snap, shift, err := p.source.Snapshot(ctx)
	if err != nil {
		metricPollFailures.Inc()
		p.logger.Warn().Err(err).Msg("poll tick failed, keeping previous mapping")
		return
	}

	mapping := snap.Flatten(shift)

	p.stateMu.Lock()
	p.snapshot = snap
	p.mapping = mapping
	p.stateMu.Unlock()

	metricSnapshotsPublished.Inc()
	p.logger.Debug().Int("tags", len(mapping)).Msg("tag mapping published")
}

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/models"
)

// stubChannel is a CryptoChannel returning canned snapshots; snapshotFn is
// swapped per test via an atomic pointer so a running poller can observe
// the change.
type stubChannel struct {
	calls      atomic.Int64
	snapshotFn atomic.Pointer[func(ctx context.Context) (models.Snapshot, int, error)]
}

func newStubChannel(fn func(ctx context.Context) (models.Snapshot, int, error)) *stubChannel {
	s := &stubChannel{}
	s.snapshotFn.Store(&fn)
	return s
}

func (s *stubChannel) Negotiate(context.Context) error { return nil }

func (s *stubChannel) EncryptTag(name, value string) (models.EncryptedTagRecord, error) {
	return models.EncryptedTagRecord{Name: name, Value: value}, nil
}

func (s *stubChannel) Snapshot(ctx context.Context) (models.Snapshot, int, error) {
	s.calls.Add(1)
	return (*s.snapshotFn.Load())(ctx)
}

func telemetrySnapshot() models.Snapshot {
	return models.Snapshot{Sections: []models.Section{
		{Name: "analog", Tags: map[string]models.TagRecord{
			"temp": {"value": "21.5"},
		}},
		{Name: "discrete", Tags: map[string]models.TagRecord{
			"run": {"value": "1"},
		}},
		{Name: "quality", Tags: map[string]models.TagRecord{
			"stale": {"value": "0"},
		}},
		{Name: "meta", Tags: map[string]models.TagRecord{
			"ts": {"value": "2026-08-24T10:00:00Z"},
		}},
	}}
}

func TestPoller_PublishesFlattenedMapping(t *testing.T) {
	source := newStubChannel(func(context.Context) (models.Snapshot, int, error) {
		return telemetrySnapshot(), 2, nil
	})
	p := NewPoller(source, time.Hour, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	// one immediate refresh runs on Start
	require.Eventually(t, func() bool {
		return len(p.Mapping()) > 0
	}, time.Second, 5*time.Millisecond)

	mapping := p.Mapping()
	assert.Len(t, mapping, 2, "trailing metadata sections are dropped")

	temp, ok := p.Tag("temp")
	require.True(t, ok)
	assert.Equal(t, "21.5", temp.Value())

	_, ok = p.Tag("ts")
	assert.False(t, ok)

	value, ok := p.Tag("run")
	require.True(t, ok)
	assert.Equal(t, "1", value.Value())
}

func TestPoller_FailedTickKeepsPreviousMapping(t *testing.T) {
	source := newStubChannel(func(context.Context) (models.Snapshot, int, error) {
		return telemetrySnapshot(), 2, nil
	})
	p := NewPoller(source, 10*time.Millisecond, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		return len(p.Mapping()) > 0
	}, time.Second, 5*time.Millisecond)
	before := p.Mapping()

	failing := func(context.Context) (models.Snapshot, int, error) {
		return models.Snapshot{}, 0, errors.New("device offline")
	}
	source.snapshotFn.Store(&failing)
	base := source.calls.Load()

	// wait for at least two failed ticks
	require.Eventually(t, func() bool {
		return source.calls.Load() >= base+2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, before, p.Mapping(), "failed ticks must not clear published state")
}

func TestPoller_StopHaltsTicks(t *testing.T) {
	source := newStubChannel(func(context.Context) (models.Snapshot, int, error) {
		return telemetrySnapshot(), 2, nil
	})
	p := NewPoller(source, 5*time.Millisecond, logger.Nop())

	p.Start(context.Background())
	require.Eventually(t, func() bool {
		return source.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	p.Stop()
	after := source.calls.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, source.calls.Load(), "no tick may execute after Stop returns")

	// mapping survives Stop
	assert.NotEmpty(t, p.Mapping())
}

func TestPoller_StopIdempotent(t *testing.T) {
	source := newStubChannel(func(context.Context) (models.Snapshot, int, error) {
		return telemetrySnapshot(), 2, nil
	})
	p := NewPoller(source, time.Hour, logger.Nop())

	// Stop before Start is a no-op
	p.Stop()

	p.Start(context.Background())
	p.Stop()
	p.Stop()
}

func TestPoller_SetPeriodRestartsRunningPoller(t *testing.T) {
	source := newStubChannel(func(context.Context) (models.Snapshot, int, error) {
		return telemetrySnapshot(), 2, nil
	})
	p := NewPoller(source, time.Hour, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		return source.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	// with an hour period no further ticks would come; shrinking the period
	// must take effect on the running poller
	p.SetPeriod(5 * time.Millisecond)

	require.Eventually(t, func() bool {
		return source.calls.Load() >= 4
	}, time.Second, time.Millisecond)
}

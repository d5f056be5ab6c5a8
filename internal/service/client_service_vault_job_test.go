// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
)

// spyLocker counts ExpireIdle calls.
type spyLocker struct {
	calls   atomic.Int64
	expires atomic.Bool
}

func (s *spyLocker) ExpireIdle() bool {
	s.calls.Add(1)
	return s.expires.Load()
}

func TestVaultExpiryJob_Start_ChecksPeriodically(t *testing.T) {
	spy := &spyLocker{}
	job := NewVaultExpiryJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestVaultExpiryJob_KeepsRunningAfterLocking(t *testing.T) {
	spy := &spyLocker{}
	spy.expires.Store(true)
	job := NewVaultExpiryJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestVaultExpiryJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyLocker{}
	job := NewVaultExpiryJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, spy.calls.Load())
}

func TestVaultExpiryJob_StopWithoutStart(t *testing.T) {
	job := NewVaultExpiryJob(&spyLocker{}, logger.Nop())

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestVaultExpiryJob_DefaultInterval(t *testing.T) {
	spy := &spyLocker{}
	job := NewVaultExpiryJob(spy, logger.Nop())

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestVaultExpiryJob_ContextCancelStopsJob(t *testing.T) {
	job := NewVaultExpiryJob(&spyLocker{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Stop hung after context cancellation")
	}
}

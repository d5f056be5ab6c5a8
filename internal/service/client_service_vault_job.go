package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/logger"
)

const defaultExpiryCheckInterval = 30 * time.Second

type vaultExpiryJob struct {
	vault  IdleLocker
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewVaultExpiryJob creates a job that calls vault.ExpireIdle on a ticker.
// The job is idle until Start is called.
func NewVaultExpiryJob(vault IdleLocker, logger *logger.Logger) VaultExpiryJob {
	return &vaultExpiryJob{vault: vault, logger: logger}
}

// Start implements VaultExpiryJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *vaultExpiryJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultExpiryCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.vault.ExpireIdle() {
					j.logger.Info().Msg("vault locked after idle timeout")
				}
			}
		}
	}()
}

// Stop implements VaultExpiryJob. Safe to call when the job is not running.
func (j *vaultExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

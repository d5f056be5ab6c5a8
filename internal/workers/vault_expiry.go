// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/service"
)

// VaultExpiryWorker locks an idle vault session in the background.
type VaultExpiryWorker struct {
	job      service.VaultExpiryJob
	interval time.Duration
}

func NewVaultExpiryWorker(job service.VaultExpiryJob, interval time.Duration) *VaultExpiryWorker {
	return &VaultExpiryWorker{job: job, interval: interval}
}

func (w *VaultExpiryWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *VaultExpiryWorker) Stop() {
	w.job.Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"time"

	"github.com/awnumar/memguard"
)

// keyring is the ephemeral, process-scoped secret cache. The secret lives in
// a memguard enclave and is dropped on wipe or once idle for ttl.
// keyring is not safe for concurrent use; the owning Session guards it.
type keyring struct {
	enclave  *memguard.Enclave
	lastUsed time.Time
	ttl      time.Duration
}

func (k *keyring) store(secret string, now time.Time) {
	if secret == "" {
		k.wipe()
		return
	}
	k.enclave = memguard.NewEnclave([]byte(secret))
	k.lastUsed = now
}

// secret returns the cached secret and refreshes the idle timer.
func (k *keyring) secret(now time.Time) (string, bool) {
	if k.expired(now) {
		k.wipe()
		return "", false
	}

	buf, err := k.enclave.Open()
	if err != nil {
		k.wipe()
		return "", false
	}
	defer buf.Destroy()

	k.lastUsed = now
	return string(buf.Bytes()), true
}

func (k *keyring) expired(now time.Time) bool {
	if k.enclave == nil {
		return true
	}
	return k.ttl > 0 && now.Sub(k.lastUsed) >= k.ttl
}

func (k *keyring) wipe() {
	k.enclave = nil
	k.lastUsed = time.Time{}
}

package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/wallet"
)

// UnlockMessage is the exact text a wallet signs to unlock the vault. The
// signature is the vault secret, so any change to this string makes every
// wallet-protected note unreadable.
const UnlockMessage = "Sign this message to unlock your Sovereign Notes Vault.\n\nNonce: sovereign-notes-v1"

type walletSource struct {
	agent   wallet.Agent
	timeout time.Duration
}

// NewWalletSource returns a [SecretSource] that asks agent to sign
// [UnlockMessage]. A zero timeout waits for the agent indefinitely.
func NewWalletSource(agent wallet.Agent, timeout time.Duration) SecretSource {
	return &walletSource{agent: agent, timeout: timeout}
}

// Acquire implements [SecretSource]. Errors wrap [wallet.ErrExternalAgent].
func (w *walletSource) Acquire(ctx context.Context) (string, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	address, err := w.agent.Connect(ctx)
	if err != nil {
		return "", agentError(err)
	}

	signature, err := w.agent.SignMessage(ctx, address, UnlockMessage)
	if err != nil {
		return "", agentError(err)
	}

	return signature, nil
}

func agentError(err error) error {
	if errors.Is(err, wallet.ErrExternalAgent) {
		return err
	}
	return fmt.Errorf("%w: %w", wallet.ErrExternalAgent, err)
}

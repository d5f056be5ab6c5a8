package wallet

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_agent_mock.go -package=mock

import "context"

// Agent is an external wallet able to reveal an account and sign a
// personal message with it.
type Agent interface {
	// Connect asks the wallet for its active account and returns the
	// checksummed address.
	Connect(ctx context.Context) (string, error)

	// SignMessage signs message as an EIP-191 personal message with the
	// account at address and returns the 0x-prefixed hex signature.
	SignMessage(ctx context.Context, address, message string) (string, error)
}

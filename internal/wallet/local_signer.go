package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// localSigner is an [Agent] backed by a secp256k1 key in memory. Its
// signatures are deterministic (RFC 6979), so the same message always
// yields the same secret.
type localSigner struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewLocalSigner builds a signer from a hex encoded private key.
func NewLocalSigner(hexKey string) (Agent, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrExternalAgent, err)
	}

	return &localSigner{
		key:     key,
		address: ethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// NewLocalSignerFromFile reads a hex private key from path.
func NewLocalSignerFromFile(path string) (Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: read key file: %w", ErrExternalAgent, ErrAgentUnavailable, err)
	}

	return NewLocalSigner(string(data))
}

// Connect implements [Agent].
func (s *localSigner) Connect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalAgent, err)
	}
	return s.address, nil
}

// SignMessage implements [Agent].
func (s *localSigner) SignMessage(ctx context.Context, address, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalAgent, err)
	}
	if !strings.EqualFold(address, s.address) {
		return "", fmt.Errorf("%w: %w", ErrExternalAgent, ErrAccountMismatch)
	}

	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %w", ErrExternalAgent, err)
	}
	// personal_sign convention: V in {27, 28}.
	sig[ethcrypto.RecoveryIDOffset] += 27

	return hexutil.Encode(sig), nil
}

// RecoverAddress returns the address that produced signature over message.
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != ethcrypto.SignatureLength {
		return "", fmt.Errorf("signature must be %d bytes, got %d", ethcrypto.SignatureLength, len(sig))
	}
	if sig[ethcrypto.RecoveryIDOffset] >= 27 {
		sig[ethcrypto.RecoveryIDOffset] -= 27
	}

	pub, err := ethcrypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}

	return ethcrypto.PubkeyToAddress(*pub).Hex(), nil
}

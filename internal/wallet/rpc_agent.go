// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/go-notes-vault/internal/utils"
)

// userRejectedCode is the EIP-1193 error code for a request the user
// declined.
const userRejectedCode = 4001

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcAgent struct {
	client *utils.HTTPClient
	nextID atomic.Int64
}

// NewRPCAgent returns an [Agent] that talks JSON-RPC 2.0 over HTTP to a
// wallet bridge at url (eth_requestAccounts, personal_sign).
func NewRPCAgent(url string, timeout time.Duration) Agent {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &rpcAgent{client: utils.NewHTTPClient(url, timeout)}
}

// Connect implements [Agent].
func (a *rpcAgent) Connect(ctx context.Context) (string, error) {
	var accounts []string
	if err := a.call(ctx, "eth_requestAccounts", nil, &accounts); err != nil {
		return "", err
	}
	if len(accounts) == 0 || accounts[0] == "" {
		return "", fmt.Errorf("%w: %w", ErrExternalAgent, ErrNoAccounts)
	}

	return accounts[0], nil
}

// SignMessage implements [Agent]. The message is sent hex encoded, as
// wallets expect for personal_sign.
func (a *rpcAgent) SignMessage(ctx context.Context, address, message string) (string, error) {
	params := []any{hexutil.Encode([]byte(message)), address}

	var signature string
	if err := a.call(ctx, "personal_sign", params, &signature); err != nil {
		return "", err
	}
	if signature == "" {
		return "", fmt.Errorf("%w: empty signature", ErrExternalAgent)
	}

	return signature, nil
}

func (a *rpcAgent) call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}

	var rpcResp rpcResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "2.0", ID: a.nextID.Add(1), Method: method, Params: params}).
		SetResult(&rpcResp).
		SetError(&rpcResp).
		Post("")
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s: %w", ErrExternalAgent, method, err)
		}
		return fmt.Errorf("%w: %w: %s: %w", ErrExternalAgent, ErrAgentUnavailable, method, err)
	}

	if rpcResp.Error != nil {
		if rpcResp.Error.Code == userRejectedCode {
			return fmt.Errorf("%w: %w", ErrExternalAgent, ErrRejected)
		}
		return fmt.Errorf("%w: %s: rpc error %d: %s", ErrExternalAgent, method, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %w: %s: http %d", ErrExternalAgent, ErrAgentUnavailable, method, resp.StatusCode())
	}

	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%w: %s: decode result: %w", ErrExternalAgent, method, err)
	}

	return nil
}

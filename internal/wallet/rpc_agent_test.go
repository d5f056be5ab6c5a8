// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRPCServer answers every JSON-RPC call with handle(method, params).
func newRPCServer(t *testing.T, handle func(method string, params []any) (any, *rpcError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)

		result, rpcErr := handle(req.Method, req.Params)

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

// ── Connect ──────────────────────────────────────────────────────────────────

func TestRPCAgent_Connect_Success(t *testing.T) {
	srv := newRPCServer(t, func(method string, _ []any) (any, *rpcError) {
		assert.Equal(t, "eth_requestAccounts", method)
		return []string{testAddrHex}, nil
	})
	defer srv.Close()

	addr, err := NewRPCAgent(srv.URL, time.Second).Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAddrHex, addr)
}

func TestRPCAgent_Connect_NoAccounts(t *testing.T) {
	srv := newRPCServer(t, func(string, []any) (any, *rpcError) {
		return []string{}, nil
	})
	defer srv.Close()

	_, err := NewRPCAgent(srv.URL, time.Second).Connect(context.Background())
	assert.ErrorIs(t, err, ErrExternalAgent)
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestRPCAgent_Connect_Rejected(t *testing.T) {
	srv := newRPCServer(t, func(string, []any) (any, *rpcError) {
		return nil, &rpcError{Code: userRejectedCode, Message: "User rejected the request."}
	})
	defer srv.Close()

	_, err := NewRPCAgent(srv.URL, time.Second).Connect(context.Background())
	assert.ErrorIs(t, err, ErrExternalAgent)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestRPCAgent_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRPCAgent(url, time.Second).Connect(context.Background())
	assert.ErrorIs(t, err, ErrExternalAgent)
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

func TestRPCAgent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewRPCAgent(srv.URL, 20*time.Millisecond).Connect(context.Background())
	assert.ErrorIs(t, err, ErrExternalAgent)
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

func TestRPCAgent_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRPCAgent(srv.URL, time.Second).Connect(context.Background())
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

// ── SignMessage ──────────────────────────────────────────────────────────────

func TestRPCAgent_SignMessage_SendsHexMessage(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []any) (any, *rpcError) {
		assert.Equal(t, "personal_sign", method)
		if assert.Len(t, params, 2) {
			assert.Equal(t, hexutil.Encode([]byte(testMessage)), params[0])
			assert.Equal(t, testAddrHex, params[1])
		}
		return "0xsignature", nil
	})
	defer srv.Close()

	sig, err := NewRPCAgent(srv.URL, time.Second).SignMessage(context.Background(), testAddrHex, testMessage)
	require.NoError(t, err)
	assert.Equal(t, "0xsignature", sig)
}

func TestRPCAgent_SignMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		result  any
		rpcErr  *rpcError
		wantErr error
	}{
		{name: "rejected", rpcErr: &rpcError{Code: 4001, Message: "denied"}, wantErr: ErrRejected},
		{name: "other rpc error", rpcErr: &rpcError{Code: -32603, Message: "internal"}, wantErr: ErrExternalAgent},
		{name: "empty signature", result: "", wantErr: ErrExternalAgent},
		{name: "wrong result type", result: 42, wantErr: ErrExternalAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRPCServer(t, func(string, []any) (any, *rpcError) {
				return tt.result, tt.rpcErr
			})
			defer srv.Close()

			_, err := NewRPCAgent(srv.URL, time.Second).SignMessage(context.Background(), testAddrHex, testMessage)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExternalAgent)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcServer(t *testing.T, healthy bool, lamports uint64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     any    `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		switch req.Method {
		case "getHealth":
			if healthy {
				resp["result"] = "ok"
			} else {
				resp["error"] = map[string]any{"code": -32005, "message": "Node is behind"}
			}
		case "getBalance":
			resp["result"] = map[string]any{"context": map[string]any{"slot": 1}, "value": lamports}
		default:
			resp["error"] = map[string]any{"code": -32601, "message": "Method not found"}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestWalletCommandShowsStatus(t *testing.T) {
	isolateEnv(t)
	server := rpcServer(t, true, 2_500_000_000)
	cfg := writeConfig(t, `
network:
  cluster: localnet
  rpc_url: `+server.URL+`
wallet:
  adapter: address
  address: `+testAddress+`
`)

	output, _, err := execute(t, "wallet", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, output, testAddress)
	assert.Contains(t, output, "address")
	assert.Contains(t, output, "localnet")
	assert.Contains(t, output, server.URL)
	assert.Contains(t, output, "RPC health    ok")
	assert.Contains(t, output, "2.500 SOL")
}

func TestWalletCommandUnhealthyNode(t *testing.T) {
	isolateEnv(t)
	server := rpcServer(t, false, 0)
	cfg := writeConfig(t, `
network:
  cluster: devnet
  rpc_url: `+server.URL+`
wallet:
  adapter: address
  address: `+testAddress+`
`)

	output, _, err := execute(t, "wallet", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, output, "unavailable")
}

func TestWalletCommandMissingKeypair(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, `
wallet:
  adapter: keypair
  keypair_path: /nonexistent/id.json
`)

	_, _, err := execute(t, "wallet", "--config", cfg)
	require.Error(t, err)
}

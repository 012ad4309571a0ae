package integration

import (
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
)

// fakeChain is a minimal stateful Solana JSON-RPC node. Airdrops credit the
// balance immediately and every signature it issued reports as confirmed.
type fakeChain struct {
	mu          sync.Mutex
	balance     uint64
	issued      map[string]bool
	airdrops    int
	failAirdrop bool
	unhealthy   bool

	srv *httptest.Server
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newFakeChain(t *testing.T, balance uint64) *fakeChain {
	t.Helper()
	f := &fakeChain{balance: balance, issued: make(map[string]bool)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeChain) serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, rpcErr := f.handle(req)
	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeChain) handle(req rpcRequest) (interface{}, *rpcError) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch req.Method {
	case "getBalance":
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value":   f.balance,
		}, nil

	case "requestAirdrop":
		if f.failAirdrop {
			return nil, &rpcError{Code: -32603, Message: "airdrop request limit reached"}
		}
		var lamports uint64
		if len(req.Params) < 2 || json.Unmarshal(req.Params[1], &lamports) != nil {
			return nil, &rpcError{Code: -32602, Message: "invalid params"}
		}
		f.airdrops++
		f.balance += lamports
		var sig solana.Signature
		binary.BigEndian.PutUint64(sig[56:], uint64(f.airdrops))
		sig[0] = 0xA1
		f.issued[sig.String()] = true
		return sig.String(), nil

	case "getSignatureStatuses":
		var sigs []string
		if len(req.Params) < 1 || json.Unmarshal(req.Params[0], &sigs) != nil {
			return nil, &rpcError{Code: -32602, Message: "invalid params"}
		}
		value := make([]interface{}, len(sigs))
		for i, s := range sigs {
			if f.issued[s] {
				value[i] = map[string]interface{}{
					"slot":               2,
					"confirmations":      nil,
					"err":                nil,
					"confirmationStatus": "finalized",
				}
			}
		}
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 2},
			"value":   value,
		}, nil

	case "getHealth":
		if f.unhealthy {
			return nil, &rpcError{Code: -32005, Message: "Node is unhealthy"}
		}
		return "ok", nil
	}
	return nil, &rpcError{Code: -32601, Message: "Method not found"}
}

func (f *fakeChain) Balance() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

func (f *fakeChain) SetFailAirdrop(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAirdrop = fail
}

func (f *fakeChain) SetUnhealthy(unhealthy bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unhealthy = unhealthy
}

func (f *fakeChain) Airdrops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.airdrops
}

// fakeOracle serves the Jupiter price v2 response shape from a fixed table.
type fakeOracle struct {
	prices map[string]string
	srv    *httptest.Server
}

func newFakeOracle(t *testing.T, prices map[string]string) *fakeOracle {
	t.Helper()
	f := &fakeOracle{prices: prices}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("ids")
		data := map[string]interface{}{id: nil}
		if price, ok := f.prices[id]; ok {
			data[id] = map[string]interface{}{
				"id":    id,
				"type":  "derivedPrice",
				"price": price,
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data":      data,
			"timeTaken": 0.001,
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

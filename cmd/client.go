package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	rpcRequestTimeout = 5 * time.Second
	socketDialTimeout = 100 * time.Millisecond

	// rpcEndpoint is a placeholder URL; the transport always dials
	// the daemon's control socket.
	rpcEndpoint = "http://xcrond/jsonrpc"
)

// rpcClient is a minimal JSON-RPC 2.0 client for the daemon's control
// socket.
type rpcClient struct {
	http   *http.Client
	nextID atomic.Int64
}

func newRPCClient() *rpcClient {
	return &rpcClient{
		http: &http.Client{
			Transport: newRPCTransport(),
			Timeout:   rpcRequestTimeout,
		},
	}
}

type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// call invokes method with params and decodes the result into out.
// A nil out discards the result.
func (c *rpcClient) call(method string, params, out interface{}) error {
	reqBody := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      c.nextID.Add(1),
		"method":  method,
	}
	if params != nil {
		reqBody["params"] = params
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(rpcEndpoint, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env rpcEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	if env.Error != nil {
		return env.Error
	}
	if out != nil {
		return json.Unmarshal(env.Result, out)
	}
	return nil
}

package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/uuid"
)

// RPCError is an error object returned by the JSON-RPC server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("kodi rpc error %d: %s", e.Code, e.Message)
}

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kodi http status %d", e.StatusCode)
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      string      `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Client calls Kodi's JSON-RPC API over HTTP with basic auth.
type Client struct {
	url      string
	username string
	password string
	http     *http.Client
	executor failsafe.Executor[*http.Response]
}

// NewClient creates a client for http://host:port/jsonrpc. Transport errors
// and 5xx responses are retried up to retries times.
func NewClient(host string, port int, username, password string, timeout time.Duration, retries int) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	policy := retrypolicy.NewBuilder[*http.Response]().
		HandleIf(func(_ *http.Response, err error) bool { return shouldRetry(err) }).
		WithMaxRetries(retries).
		WithBackoff(100*time.Millisecond, 2*time.Second).
		Build()
	return &Client{
		url:      fmt.Sprintf("http://%s:%d/jsonrpc", host, port),
		username: username,
		password: password,
		http:     &http.Client{Timeout: timeout},
		executor: failsafe.With[*http.Response](policy),
	}
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return true
}

// Call invokes method with params and decodes the result into result,
// which may be nil.
func (c *Client) Call(ctx context.Context, method string, params, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", method, err)
	}

	resp, err := c.executor.WithContext(ctx).Get(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.username != "" {
			req.SetBasicAuth(c.username, c.password)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if result == nil || len(decoded.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(decoded.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// Ping checks that the server answers JSONRPC.Ping with "pong".
func (c *Client) Ping(ctx context.Context) error {
	var pong string
	if err := c.Call(ctx, "JSONRPC.Ping", nil, &pong); err != nil {
		return err
	}
	if pong != "pong" {
		return fmt.Errorf("unexpected ping reply %q", pong)
	}
	return nil
}

// InfoBooleans evaluates boolean info expressions.
func (c *Client) InfoBooleans(ctx context.Context, exprs ...string) (map[string]bool, error) {
	var out map[string]bool
	params := map[string]interface{}{"booleans": exprs}
	if err := c.Call(ctx, "XBMC.GetInfoBooleans", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InfoBoolean evaluates a single boolean info expression. Kodi may echo the
// key with different casing, so the lookup falls back to a case-insensitive
// match.
func (c *Client) InfoBoolean(ctx context.Context, expr string) (bool, error) {
	values, err := c.InfoBooleans(ctx, expr)
	if err != nil {
		return false, err
	}
	if v, ok := values[expr]; ok {
		return v, nil
	}
	for k, v := range values {
		if strings.EqualFold(k, expr) {
			return v, nil
		}
	}
	return false, fmt.Errorf("no value returned for %q", expr)
}

// SettingValue returns the value of a GUI setting.
func (c *Client) SettingValue(ctx context.Context, setting string) (json.RawMessage, error) {
	var out struct {
		Value json.RawMessage `json:"value"`
	}
	params := map[string]interface{}{"setting": setting}
	if err := c.Call(ctx, "Settings.GetSettingValue", params, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// AddonVersion returns the installed version of an addon.
func (c *Client) AddonVersion(ctx context.Context, addonID string) (string, error) {
	var out struct {
		Addon struct {
			Version string `json:"version"`
		} `json:"addon"`
	}
	params := map[string]interface{}{
		"addonid":    addonID,
		"properties": []string{"version"},
	}
	if err := c.Call(ctx, "Addons.GetAddonDetails", params, &out); err != nil {
		return "", err
	}
	return out.Addon.Version, nil
}

package kodi

import (
	"context"
	"encoding/json"
	"fmt"
)

const skinSetting = "lookandfeel.skin"

// builtinSender is the part of EventClient the host depends on.
type builtinSender interface {
	Send(builtin string) error
	Close() error
}

// Host implements the platform interfaces on top of a running Kodi:
// builtins go over the EventServer, queries over JSON-RPC.
type Host struct {
	rpc    *Client
	events builtinSender
}

// NewHost combines a JSON-RPC client and an EventServer sender.
func NewHost(rpc *Client, events builtinSender) *Host {
	return &Host{rpc: rpc, events: events}
}

// Execute sends a builtin command. It does not wait for Kodi to act on it.
func (h *Host) Execute(_ context.Context, builtin string) error {
	return h.events.Send(builtin)
}

// Condition evaluates a boolean info expression.
func (h *Host) Condition(ctx context.Context, expr string) (bool, error) {
	return h.rpc.InfoBoolean(ctx, expr)
}

// Skin returns the active skin's addon id.
func (h *Host) Skin(ctx context.Context) (string, error) {
	raw, err := h.rpc.SettingValue(ctx, skinSetting)
	if err != nil {
		return "", err
	}
	var skin string
	if err := json.Unmarshal(raw, &skin); err != nil {
		return "", fmt.Errorf("unexpected %s value %s: %w", skinSetting, string(raw), err)
	}
	return skin, nil
}

// Ping checks the JSON-RPC endpoint.
func (h *Host) Ping(ctx context.Context) error {
	return h.rpc.Ping(ctx)
}

// AddonVersion returns the installed version of addonID.
func (h *Host) AddonVersion(ctx context.Context, addonID string) (string, error) {
	return h.rpc.AddonVersion(ctx, addonID)
}

// Close releases the EventServer socket.
func (h *Host) Close() error {
	return h.events.Close()
}

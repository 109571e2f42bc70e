package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/kodi-search/internal/model"
	"github.com/mj1618/kodi-search/internal/output"
	"github.com/mj1618/kodi-search/internal/search"
)

// resultToText serializes a result document to YAML for the MCP response.
func resultToText(v interface{}) string {
	text, err := output.Render(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %s", err)
	}
	return text
}

func textResult(ok bool, v interface{}) *mcp.CallToolResult {
	if !ok {
		return mcp.NewToolResultError(resultToText(v))
	}
	return mcp.NewToolResultText(resultToText(v))
}

// searchParams merges the raw launch string with the explicit arguments,
// explicit arguments winning.
func searchParams(args map[string]interface{}) model.Params {
	var p model.Params
	if raw := StringParam(args, "params", ""); raw != "" {
		p, _ = model.ParseParams([]string{raw})
	}
	if q := strings.TrimSpace(StringParam(args, "query", "")); q != "" {
		p.Query = q
	}
	if m := StringParam(args, "method", ""); m != "" {
		p.Method = m
	}
	if w := StringParam(args, "window", ""); w != "" {
		p.Window = w
	}
	return p
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := searchParams(request.GetArguments())
	if p.Query == "" {
		s.log.Info("no search parameter; nothing to do")
		return mcp.NewToolResultText(resultToText(search.Report{OK: true, Action: "search"})), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	report := s.searcher.Search(ctx, p)
	// A partial run still left Kodi in a usable state; report it as text.
	return mcp.NewToolResultText(resultToText(report)), nil
}

func (s *Server) handlePullUp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	query := strings.TrimSpace(StringParam(args, "query", ""))
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	media, err := model.ParseMediaType(StringParam(args, "media_type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res := s.searcher.PullUp(ctx, query, media)
	return textResult(res.OK, res), nil
}

func (s *Server) handleWait(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	expr := StringParam(args, "condition", "")
	if expr == "" {
		return mcp.NewToolResultError("condition is required"), nil
	}
	timeout := time.Duration(IntParam(args, "timeout", int(s.settings.ReadyTimeout/time.Millisecond))) * time.Millisecond
	interval := time.Duration(IntParam(args, "interval", int(s.settings.PollInterval/time.Millisecond))) * time.Millisecond

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res := s.waiter.Wait(ctx, expr, timeout, interval)
	return textResult(res.OK, res), nil
}

func (s *Server) handleFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	control := StringParam(args, "control", "")
	if control == "" {
		return mcp.NewToolResultError("control is required"), nil
	}
	alternate := StringParam(args, "alternate", "")
	attempts := IntParam(args, "attempts", s.settings.FocusAttempts)
	if attempts < 1 {
		attempts = 1
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res := s.focus.Focus(ctx, control, alternate, attempts)
	return textResult(res.OK, res), nil
}

func (s *Server) handleSkin(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if BoolParam(request.GetArguments(), "refresh", false) {
		s.skins.Invalidate()
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res := s.searcher.DescribeSkin(ctx)
	return textResult(res.OK, res), nil
}

func (s *Server) handleSkins(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(resultToText(s.searcher.Profiles())), nil
}

func (s *Server) handleStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	res := search.Status(ctx, s.provider.Diagnostics, s.skins, s.addon)
	return textResult(res.OK, res), nil
}

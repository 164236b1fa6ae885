package bridge

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/iceinvein/bootleg-msn/internal/config"
	"github.com/iceinvein/bootleg-msn/internal/host"
	"github.com/iceinvein/bootleg-msn/internal/shell"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	stores, err := shell.OpenStores(t.TempDir())
	if err != nil {
		t.Fatalf("open stores: %v", err)
	}
	sh := shell.New(&host.Provider{}, stores, config.Default(), nil)
	return New(sh)
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestServe_UnsupportedTransport(t *testing.T) {
	srv := newTestServer(t)
	err := srv.Serve(Config{Transport: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("error should name the transport: %v", err)
	}
}

func TestShowNotification_RequiresTitleAndBody(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.handleShowNotification(context.Background(), callReq(map[string]any{
		"title": "hello",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing body")
	}
}

func TestNotificationClick_RequiresID(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.handleNotificationClick(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for missing id")
	}
}

func TestOpenURL_RejectsNonHTTPScheme(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.handleOpenURL(context.Background(), callReq(map[string]any{
		"url": "file:///etc/passwd",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for file scheme")
	}
	if got := resultText(t, res); got != "Invalid URL scheme" {
		t.Errorf("error text = %q, want %q", got, "Invalid URL scheme")
	}
}

func TestGetAndSetSettings_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	res, err := srv.handleSetSettings(context.Background(), callReq(map[string]any{
		"enabled":           false,
		"quiet-hours":       true,
		"quiet-hours-start": "22:00",
		"quiet-hours-end":   "23:00",
	}))
	if err != nil {
		t.Fatalf("set settings: %v", err)
	}
	if res.IsError {
		t.Fatalf("set settings returned error: %s", resultText(t, res))
	}

	res, err = srv.handleGetSettings(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	var settings shell.NotificationSettings
	if err := json.Unmarshal([]byte(resultText(t, res)), &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.Enabled {
		t.Error("Enabled should be false after update")
	}
	if !settings.QuietHoursEnabled {
		t.Error("QuietHoursEnabled should be true after update")
	}
	if settings.QuietHoursStart == nil || *settings.QuietHoursStart != "22:00" {
		t.Errorf("QuietHoursStart = %v, want 22:00", settings.QuietHoursStart)
	}
}

func TestSetUnreadCount_RejectsNegative(t *testing.T) {
	srv := newTestServer(t)
	res, err := srv.handleSetUnreadCount(context.Background(), callReq(map[string]any{
		"count": float64(-3),
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for negative count")
	}
}

// Package bridge exposes the shell's request surface to AI agents over
// the Model Context Protocol, so tools can raise notifications, open
// chats, and adjust settings without driving the UI.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/iceinvein/bootleg-msn/internal/shell"
	"github.com/iceinvein/bootleg-msn/internal/version"
)

// Config holds bridge transport configuration.
type Config struct {
	Transport string // "stdio" or "streamable-http"
	Port      int
}

// Server wraps the MCP server around a shell.
type Server struct {
	shell *shell.Shell
	mcp   *mcpserver.MCPServer
}

// New creates an MCP server with all shell tools registered.
func New(sh *shell.Shell) *Server {
	s := &Server{
		shell: sh,
		mcp:   mcpserver.NewMCPServer("bootleg-msn", version.Version),
	}
	s.registerTools()
	return s
}

// Serve starts the bridge with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("show-notification",
			mcp.WithDescription("Show a desktop notification, subject to the user's notification settings (quiet hours, focus suppression)"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Notification title")),
			mcp.WithString("body", mcp.Required(), mcp.Description("Notification body")),
			mcp.WithString("id", mcp.Description("Notification id (generated when omitted)")),
			mcp.WithString("type", mcp.Description("Notification type: message, contact_request, group_invite")),
			mcp.WithString("chat-id", mcp.Description("Chat the notification links to")),
			mcp.WithString("sender-id", mcp.Description("Sender the notification links to")),
		),
		s.handleShowNotification,
	)

	s.mcp.AddTool(
		mcp.NewTool("notification-click",
			mcp.WithDescription("Route a clicked notification by id: opens the chat or view it links to"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Notification id")),
		),
		s.handleNotificationClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("clear-notifications",
			mcp.WithDescription("Clear all pending notification click-through records"),
		),
		s.handleClearNotifications,
	)

	s.mcp.AddTool(
		mcp.NewTool("notification-settings",
			mcp.WithDescription("Read the user's notification settings"),
		),
		s.handleGetSettings,
	)

	s.mcp.AddTool(
		mcp.NewTool("set-notification-settings",
			mcp.WithDescription("Update the user's notification settings"),
			mcp.WithBoolean("enabled", mcp.Description("Master enable switch")),
			mcp.WithBoolean("sound", mcp.Description("Play a sound with notifications")),
			mcp.WithBoolean("preview", mcp.Description("Show message text in the notification body")),
			mcp.WithBoolean("suppress-when-focused", mcp.Description("Suppress while the main window is focused")),
			mcp.WithBoolean("quiet-hours", mcp.Description("Enable quiet hours")),
			mcp.WithString("quiet-hours-start", mcp.Description("Quiet hours start, HH:MM")),
			mcp.WithString("quiet-hours-end", mcp.Description("Quiet hours end, HH:MM")),
		),
		s.handleSetSettings,
	)

	s.mcp.AddTool(
		mcp.NewTool("open-chat",
			mcp.WithDescription("Open or focus the chat window for a contact"),
			mcp.WithString("chat-id", mcp.Required(), mcp.Description("Chat identifier")),
			mcp.WithString("contact-name", mcp.Description("Display name for the window title")),
		),
		s.handleOpenChat,
	)

	s.mcp.AddTool(
		mcp.NewTool("close-chat",
			mcp.WithDescription("Close the chat window for a contact"),
			mcp.WithString("chat-id", mcp.Required(), mcp.Description("Chat identifier")),
		),
		s.handleCloseChat,
	)

	s.mcp.AddTool(
		mcp.NewTool("set-unread-count",
			mcp.WithDescription("Set the unread message count shown on the tray icon"),
			mcp.WithNumber("count", mcp.Required(), mcp.Description("Non-negative unread count")),
		),
		s.handleSetUnreadCount,
	)

	s.mcp.AddTool(
		mcp.NewTool("open-url",
			mcp.WithDescription("Open an http(s) URL in the system browser"),
			mcp.WithString("url", mcp.Required(), mcp.Description("URL to open")),
		),
		s.handleOpenURL,
	)
}

// okResult is the JSON payload of a successful tool call.
type okResult struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	Detail string `json:"detail,omitempty"`
}

func textResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) handleShowNotification(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	body := req.GetString("body", "")
	if title == "" || body == "" {
		return mcp.NewToolResultError("title and body are required"), nil
	}

	data := shell.NotificationData{
		ID:               req.GetString("id", ""),
		Title:            title,
		Body:             body,
		ChatID:           req.GetString("chat-id", ""),
		SenderID:         req.GetString("sender-id", ""),
		NotificationType: shell.NotificationType(req.GetString("type", string(shell.NotificationMessage))),
	}
	if err := s.shell.ShowNotification(data); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "show-notification"})
}

func (s *Server) handleNotificationClick(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	if err := s.shell.HandleNotificationClick(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "notification-click"})
}

func (s *Server) handleClearNotifications(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.shell.ClearAllNotifications(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "clear-notifications"})
}

func (s *Server) handleGetSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := s.shell.LoadNotificationSettings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(settings)
}

func (s *Server) handleSetSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	settings, err := s.shell.LoadNotificationSettings()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings.Enabled = req.GetBool("enabled", settings.Enabled)
	settings.SoundEnabled = req.GetBool("sound", settings.SoundEnabled)
	settings.ShowPreview = req.GetBool("preview", settings.ShowPreview)
	settings.SuppressWhenFocused = req.GetBool("suppress-when-focused", settings.SuppressWhenFocused)
	settings.QuietHoursEnabled = req.GetBool("quiet-hours", settings.QuietHoursEnabled)
	if v := req.GetString("quiet-hours-start", ""); v != "" {
		settings.QuietHoursStart = &v
	}
	if v := req.GetString("quiet-hours-end", ""); v != "" {
		settings.QuietHoursEnd = &v
	}

	if err := s.shell.SaveNotificationSettings(settings); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(settings)
}

func (s *Server) handleOpenChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID := req.GetString("chat-id", "")
	if chatID == "" {
		return mcp.NewToolResultError("chat-id is required"), nil
	}
	name := req.GetString("contact-name", "Contact")
	if err := s.shell.CreateChatWindow(chatID, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "open-chat", Detail: shell.ChatWindowLabel(chatID)})
}

func (s *Server) handleCloseChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID := req.GetString("chat-id", "")
	if chatID == "" {
		return mcp.NewToolResultError("chat-id is required"), nil
	}
	if err := s.shell.CloseChatWindow(chatID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "close-chat"})
}

func (s *Server) handleSetUnreadCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := req.GetInt("count", -1)
	if err := s.shell.SetUnreadCount(count); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "set-unread-count"})
}

func (s *Server) handleOpenURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := req.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}
	if err := s.shell.OpenURL(url); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(okResult{OK: true, Action: "open-url", Detail: url})
}

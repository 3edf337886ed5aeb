package mcp

import (
	"context"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbox/internal/config"
	"github.com/1broseidon/winbox/internal/platform"
)

const (
	ServerName    = "winbox"
	ServerVersion = "0.1.0"
)

// disconnecter is implemented by adapters that hold a display connection.
type disconnecter interface {
	Disconnect()
}

// Server exposes box properties of native windows as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	logger    *slog.Logger

	newAdapter func(platform.Options) platform.Adapter

	mu      sync.Mutex
	adapter platform.Adapter
}

// NewServer creates a new MCP server driving the host window system.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	return newServer(cfg, logger, platform.New)
}

func newServer(cfg *config.Config, logger *slog.Logger, newAdapter func(platform.Options) platform.Adapter) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:     logger,
		newAdapter: newAdapter,
		adapter:    newAdapter(cfg.PlatformOptions(logger)),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the adapter's display connection, if any.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.adapter.(disconnecter); ok {
		d.Disconnect()
	}
}

// WatchConfig reloads the adapter whenever the config file at path changes.
func (s *Server) WatchConfig(ctx context.Context, path string) error {
	return config.Watch(ctx, path, s.logger, s.Reload)
}

// Reload swaps in an adapter built from cfg and releases the previous one.
func (s *Server) Reload(cfg *config.Config) {
	next := s.newAdapter(cfg.PlatformOptions(s.logger))

	s.mu.Lock()
	prev := s.adapter
	s.adapter = next
	s.mu.Unlock()

	if d, ok := prev.(disconnecter); ok {
		d.Disconnect()
	}
	s.logger.Info("config reloaded", "adapter", next.Name())
}

func (s *Server) currentAdapter() platform.Adapter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_box_property",
		Description: "Read one geometry property of a native window (edges, corners, midpoints, center, size, box, rect). Identify the window by handle, or on macOS by app and title. Coordinates are screen pixels with a top-left origin.",
	}, s.handleGetBoxProperty)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_box_property",
		Description: "Move or resize a native window by assigning one geometry property, e.g. center=960,540 or right=1920. Other dimensions are preserved. Returns the window box read back after the change.",
	}, s.handleSetBoxProperty)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_box_properties",
		Description: "List every geometry property name with its value kind (int, point, size, box, rect).",
	}, s.handleListBoxProperties)
}

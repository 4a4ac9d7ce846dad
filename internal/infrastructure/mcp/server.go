// Package mcp exposes the export pipeline to AI coding assistants over
// the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/handoff/internal/application"
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
	"github.com/felixgeelhaar/handoff/internal/infrastructure/delivery"
	"github.com/felixgeelhaar/handoff/internal/infrastructure/storage"
)

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

type Server struct {
	mcpServer *mcp.Server
	exportSvc *application.ExportService
	importSvc *application.ImportService
	repo      *storage.FilesystemRepository
	root      string
}

// mcpErr returns a user-friendly error for MCP clients. Internal
// details are omitted.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

func NewServer(root string) *Server {
	repo := storage.NewFilesystemRepository(root)
	auditSvc := application.NewAuditService(repo)

	info := mcp.ServerInfo{
		Name:    "handoff",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Handoff MCP Server"),
			mcp.WithDescription("Handoff exposes the backlog hierarchy as assistant-ready export artifacts and accepts JSON/CSV imports."),
			mcp.WithWebsiteURL("https://github.com/felixgeelhaar/handoff"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use tools to render export artifacts (cursor, wrap, v0, devin, json, csv, markdown), read statistics, and preview imports."),
		),
		exportSvc: application.NewExportService(repo, auditSvc, delivery.Adapter{}),
		importSvc: application.NewImportService(repo, auditSvc),
		repo:      repo,
		root:      root,
	}

	s.registerTools()
	return s
}

type ExportArgs struct {
	Format     string `json:"format" jsonschema:"description=Export format: cursor, copilot, wrap, v0, v0-prompt, devin, linear, json, csv, markdown"`
	TargetType string `json:"target_type,omitempty" jsonschema:"description=Target level: task, userStory, feature, epic, or all (default all)"`
	TargetID   string `json:"target_id,omitempty" jsonschema:"description=Id of the target entity; empty for all"`
}

type ImportArgs struct {
	Source string `json:"source" jsonschema:"description=Import source format: json or csv"`
	Text   string `json:"text" jsonschema:"description=The raw import payload"`
}

type TaskContextArgs struct {
	TaskID string `json:"task_id" jsonschema:"description=Id of the task to resolve"`
}

func (s *Server) registerTools() {
	// Tool: handoff_export
	s.mcpServer.Tool("handoff_export").
		Description("Render an export artifact for a backlog target in the requested format").
		UIResource("ui://handoff/export").
		Handler(s.handleExport)

	// Tool: handoff_get_backlog
	s.mcpServer.Tool("handoff_get_backlog").
		Description("Retrieve the full backlog snapshot").
		UIResource("ui://handoff/backlog").
		Handler(s.handleGetBacklog)

	// Tool: handoff_stats
	s.mcpServer.Tool("handoff_stats").
		Description("Compute backlog statistics (totals, coverage, criteria counts)").
		UIResource("ui://handoff/stats").
		Handler(s.handleStats)

	// Tool: handoff_resolve_task
	s.mcpServer.Tool("handoff_resolve_task").
		Description("Resolve a task into its full export context (ancestors, requirements, comments)").
		UIResource("ui://handoff/context").
		Handler(s.handleResolveTask)

	// Tool: handoff_import_preview
	s.mcpServer.Tool("handoff_import_preview").
		Description("Validate a JSON or CSV import payload and preview what a merge would bring in").
		UIResource("ui://handoff/import").
		Handler(s.handleImportPreview)
}

func (s *Server) handleExport(ctx context.Context, args ExportArgs) (string, error) {
	format, err := export.ParseFormat(args.Format)
	if err != nil {
		return "", mcpErr("Unknown export format. Use one of: cursor, copilot, wrap, v0, v0-prompt, devin, linear, json, csv, markdown.")
	}

	req := application.DefaultExportRequest(format)
	if args.TargetType != "" {
		req.TargetType = backlog.TargetType(args.TargetType)
	}
	req.TargetID = args.TargetID

	artifact, err := s.exportSvc.Export(req)
	if err != nil {
		return "", err
	}
	return artifact.Content, nil
}

func (s *Server) handleGetBacklog(ctx context.Context, args struct{}) (any, error) {
	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return nil, mcpErr("No backlog found. Run 'handoff init' in the workspace first.")
	}
	return snap, nil
}

func (s *Server) handleStats(ctx context.Context, args struct{}) (any, error) {
	stats, err := s.exportSvc.Statistics()
	if err != nil {
		return nil, mcpErr("No backlog found. Run 'handoff init' in the workspace first.")
	}
	return stats, nil
}

func (s *Server) handleResolveTask(ctx context.Context, args TaskContextArgs) (any, error) {
	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return nil, mcpErr("No backlog found. Run 'handoff init' in the workspace first.")
	}
	c, err := export.ResolveTask(snap, args.TaskID)
	if err != nil {
		return nil, err
	}
	reqs, source := c.Requirements()
	return map[string]any{
		"task":         c.Task,
		"userStory":    c.UserStory,
		"feature":      c.Feature,
		"epic":         c.Epic,
		"requirements": reqs,
		"source":       string(source),
	}, nil
}

func (s *Server) handleImportPreview(ctx context.Context, args ImportArgs) (any, error) {
	switch args.Source {
	case "json":
		return s.importSvc.PreviewJSON(args.Text), nil
	case "csv":
		return s.importSvc.PreviewCSV(args.Text), nil
	default:
		return nil, mcpErr("Unknown import source. Use json or csv.")
	}
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) StartWebSocket(addr string) error {
	return s.ServeWebSocket(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}

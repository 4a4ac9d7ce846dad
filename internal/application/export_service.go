package application

import (
	"fmt"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

// Deliverer hands a rendered artifact to the platform. Implementations
// report success as a boolean; failures stay at the delivery boundary.
type Deliverer interface {
	CopyToClipboard(content string) bool
	SaveToFile(path, content string) bool
}

// ExportRequest selects a format, a target, and the per-format options.
type ExportRequest struct {
	Format     export.Format
	TargetType backlog.TargetType
	TargetID   string

	Cursor  export.CursorOptions
	Copilot export.CopilotOptions
	V0      export.V0Options
	Devin   export.DevinOptions

	// Title and Description feed the generic Markdown export header.
	Title       string
	Description string
}

// DefaultExportRequest returns a request with every section included.
func DefaultExportRequest(format export.Format) ExportRequest {
	return ExportRequest{
		Format:     format,
		TargetType: backlog.TargetAll,
		Cursor:     export.DefaultCursorOptions(),
		Copilot:    export.DefaultCopilotOptions(),
		V0:         export.DefaultV0Options(),
		Devin:      export.DefaultDevinOptions(),
	}
}

// Artifact is a rendered export: the fixed per-format filename and the
// content, always a text/markdown variant.
type Artifact struct {
	Filename string
	Content  string
}

type ExportService struct {
	repo    WorkspaceRepository
	audit   AuditLogger
	deliver Deliverer
}

func NewExportService(repo WorkspaceRepository, audit AuditLogger, deliver Deliverer) *ExportService {
	return &ExportService{repo: repo, audit: audit, deliver: deliver}
}

// Export resolves the request target and renders the artifact. The
// snapshot is read once and never mutated.
func (s *ExportService) Export(req ExportRequest) (*Artifact, error) {
	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return nil, fmt.Errorf("load backlog: %w", err)
	}

	content, err := s.render(snap, req)
	if err != nil {
		return nil, err
	}

	_ = s.audit.Log("export", "cli", map[string]any{
		"format": string(req.Format),
		"target": string(req.TargetType),
		"id":     req.TargetID,
	})

	return &Artifact{Filename: export.Filename(req.Format), Content: content}, nil
}

func (s *ExportService) render(snap *backlog.Snapshot, req ExportRequest) (string, error) {
	switch req.Format {
	case export.FormatCursor:
		profile, err := s.repo.LoadProfile()
		if err != nil {
			return "", err
		}
		var fc *export.FeatureContext
		if req.TargetType == backlog.TargetFeature && req.TargetID != "" {
			fc, err = export.ResolveFeature(snap, req.TargetID)
			if err != nil {
				return "", err
			}
		}
		return export.RenderCursorRules(snap.App, *profile, fc, req.Cursor), nil

	case export.FormatCopilot:
		profile, err := s.repo.LoadProfile()
		if err != nil {
			return "", err
		}
		return export.RenderCopilotInstructions(snap.App, *profile, req.Copilot), nil

	case export.FormatWRAP:
		ctxs, err := export.ResolveTargets(snap, req.TargetType, req.TargetID)
		if err != nil {
			return "", err
		}
		if len(ctxs) == 1 {
			return export.RenderWRAPIssue(ctxs[0], req.Copilot), nil
		}
		return export.RenderWRAPIssues(ctxs, req.Copilot), nil

	case export.FormatV0:
		fc, err := s.featureContext(snap, req)
		if err != nil {
			return "", err
		}
		return export.RenderV0Spec(fc, req.V0), nil

	case export.FormatV0Prompt:
		fc, err := s.featureContext(snap, req)
		if err != nil {
			return "", err
		}
		return export.RenderV0Prompt(fc), nil

	case export.FormatDevin:
		ctxs, err := export.ResolveTargets(snap, req.TargetType, req.TargetID)
		if err != nil {
			return "", err
		}
		return export.RenderDevinBrief(ctxs, req.Devin), nil

	case export.FormatLinear:
		ctxs, err := export.ResolveTargets(snap, req.TargetType, req.TargetID)
		if err != nil {
			return "", err
		}
		if len(ctxs) == 1 {
			return export.RenderLinearIssue(ctxs[0], req.Devin), nil
		}
		return export.RenderLinearIssues(ctxs, req.Devin), nil

	case export.FormatJSON:
		return export.RenderJSON(snap)

	case export.FormatCSV:
		return export.RenderCSV(snap)

	case export.FormatMarkdown:
		return export.RenderMarkdown(snap, req.Title, req.Description), nil

	default:
		return "", fmt.Errorf("unknown export format %q", req.Format)
	}
}

func (s *ExportService) featureContext(snap *backlog.Snapshot, req ExportRequest) (*export.FeatureContext, error) {
	if req.TargetType != backlog.TargetFeature || req.TargetID == "" {
		return nil, fmt.Errorf("format %q requires a feature target", req.Format)
	}
	return export.ResolveFeature(snap, req.TargetID)
}

// ExportToFile renders the artifact and saves it to path. When path is
// empty the fixed per-format filename is used. Returns the path written
// and the delivery success flag.
func (s *ExportService) ExportToFile(req ExportRequest, path string) (string, bool, error) {
	artifact, err := s.Export(req)
	if err != nil {
		return "", false, err
	}
	if path == "" {
		path = artifact.Filename
	}
	return path, s.deliver.SaveToFile(path, artifact.Content), nil
}

// ExportToClipboard renders the artifact and copies it to the platform
// clipboard, returning the delivery success flag.
func (s *ExportService) ExportToClipboard(req ExportRequest) (bool, error) {
	artifact, err := s.Export(req)
	if err != nil {
		return false, err
	}
	return s.deliver.CopyToClipboard(artifact.Content), nil
}

// Statistics computes the snapshot-wide aggregate counters.
func (s *ExportService) Statistics() (backlog.Statistics, error) {
	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return backlog.Statistics{}, fmt.Errorf("load backlog: %w", err)
	}
	return backlog.ComputeStatistics(snap), nil
}

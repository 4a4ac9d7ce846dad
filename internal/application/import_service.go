package application

import (
	"fmt"

	"github.com/felixgeelhaar/handoff/internal/importer"
)

// ImportPreview summarizes a parsed import before it is merged.
type ImportPreview struct {
	Valid       bool
	Errors      []string
	Epics       int
	Features    int
	UserStories int
	Tasks       int
	Skipped     int
}

type ImportService struct {
	repo  WorkspaceRepository
	audit AuditLogger
}

func NewImportService(repo WorkspaceRepository, audit AuditLogger) *ImportService {
	return &ImportService{repo: repo, audit: audit}
}

// PreviewJSON parses JSON text and reports what a merge would bring in.
// The preview counts come from the payload's round-tripped metadata,
// not from re-counting the arrays.
func (s *ImportService) PreviewJSON(text string) *ImportPreview {
	result := importer.ParseJSON(text)
	if !result.Valid {
		return &ImportPreview{Errors: result.Errors}
	}
	return &ImportPreview{
		Valid:       true,
		Epics:       result.Payload.Metadata.TotalEpics,
		Features:    result.Payload.Metadata.TotalFeatures,
		UserStories: result.Payload.Metadata.TotalUserStories,
		Tasks:       result.Payload.Metadata.TotalTasks,
	}
}

// PreviewCSV parses CSV text and reports bucket counts and skipped rows.
func (s *ImportService) PreviewCSV(text string) *ImportPreview {
	result := importer.ParseCSV(text)
	if !result.Valid {
		return &ImportPreview{Errors: result.Errors}
	}
	return &ImportPreview{
		Valid:       true,
		Epics:       len(result.Epics),
		Features:    len(result.Features),
		UserStories: len(result.UserStories),
		Tasks:       len(result.Tasks),
		Skipped:     result.Skipped,
	}
}

// MergeJSON parses JSON text and merges the parsed entities into the
// stored backlog, overwriting entities that share an id.
func (s *ImportService) MergeJSON(text string) (*ImportPreview, error) {
	result := importer.ParseJSON(text)
	if !result.Valid {
		return &ImportPreview{Errors: result.Errors}, nil
	}

	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return nil, fmt.Errorf("load backlog: %w", err)
	}

	p := result.Payload
	for i := range p.Epics {
		snap.Epics[p.Epics[i].ID] = &p.Epics[i]
	}
	for i := range p.Features {
		snap.Features[p.Features[i].ID] = &p.Features[i]
	}
	for i := range p.UserStories {
		snap.UserStories[p.UserStories[i].ID] = &p.UserStories[i]
	}
	for i := range p.Tasks {
		snap.Tasks[p.Tasks[i].ID] = &p.Tasks[i]
	}

	if err := s.repo.SaveBacklog(snap); err != nil {
		return nil, fmt.Errorf("save backlog: %w", err)
	}

	_ = s.audit.Log("import", "cli", map[string]any{
		"source": "json",
		"epics":  len(p.Epics),
		"tasks":  len(p.Tasks),
	})

	return s.PreviewJSON(text), nil
}

// MergeCSV parses CSV text and merges the parsed entities into the
// stored backlog, overwriting entities that share an id.
func (s *ImportService) MergeCSV(text string) (*ImportPreview, error) {
	result := importer.ParseCSV(text)
	if !result.Valid {
		return &ImportPreview{Errors: result.Errors}, nil
	}

	snap, err := s.repo.LoadBacklog()
	if err != nil {
		return nil, fmt.Errorf("load backlog: %w", err)
	}

	for i := range result.Epics {
		snap.Epics[result.Epics[i].ID] = &result.Epics[i]
	}
	for i := range result.Features {
		snap.Features[result.Features[i].ID] = &result.Features[i]
	}
	for i := range result.UserStories {
		snap.UserStories[result.UserStories[i].ID] = &result.UserStories[i]
	}
	for i := range result.Tasks {
		snap.Tasks[result.Tasks[i].ID] = &result.Tasks[i]
	}

	if err := s.repo.SaveBacklog(snap); err != nil {
		return nil, fmt.Errorf("save backlog: %w", err)
	}

	_ = s.audit.Log("import", "cli", map[string]any{
		"source":  "csv",
		"total":   result.Total(),
		"skipped": result.Skipped,
	})

	return &ImportPreview{
		Valid:       true,
		Epics:       len(result.Epics),
		Features:    len(result.Features),
		UserStories: len(result.UserStories),
		Tasks:       len(result.Tasks),
		Skipped:     result.Skipped,
	}, nil
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// RenderJSON produces the versioned JSON interchange file for the whole
// snapshot. Arrays are emitted in deterministic order and the metadata
// counts match the snapshot statistics.
func RenderJSON(snap *backlog.Snapshot) (string, error) {
	stats := backlog.ComputeStatistics(snap)

	payload := backlog.Payload{
		Version:    backlog.PayloadVersion,
		ExportedAt: time.Now().UTC(),
		App:        snap.App,
		Metadata: backlog.PayloadMetadata{
			TotalEpics:       stats.TotalEpics,
			TotalFeatures:    stats.TotalFeatures,
			TotalUserStories: stats.TotalUserStories,
			TotalTasks:       stats.TotalTasks,
		},
	}
	for _, e := range snap.PresentEpics() {
		payload.Epics = append(payload.Epics, *e)
	}
	for _, f := range snap.PresentFeatures() {
		payload.Features = append(payload.Features, *f)
	}
	for _, u := range snap.PresentUserStories() {
		payload.UserStories = append(payload.UserStories, *u)
	}
	for _, t := range snap.PresentTasks() {
		payload.Tasks = append(payload.Tasks, *t)
	}
	if payload.Epics == nil {
		payload.Epics = []backlog.Epic{}
	}
	if payload.Features == nil {
		payload.Features = []backlog.Feature{}
	}
	if payload.UserStories == nil {
		payload.UserStories = []backlog.UserStory{}
	}
	if payload.Tasks == nil {
		payload.Tasks = []backlog.Task{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export payload: %w", err)
	}
	return string(data) + "\n", nil
}

// csvHeader is the fixed column set of the CSV interchange file.
var csvHeader = []string{"Type", "ID", "Title", "Description", "Parent ID", "Status", "Points"}

// RenderCSV produces the CSV interchange file: the fixed header row and
// one row per entity across all four types. Fields containing commas,
// quotes, or newlines are quoted with internal quotes doubled
// (RFC 4180, handled by encoding/csv).
func RenderCSV(snap *backlog.Snapshot) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{csvHeader}
	for _, e := range snap.PresentEpics() {
		rows = append(rows, []string{"epic", e.ID, e.Title, e.Description, "", "", ""})
	}
	for _, f := range snap.PresentFeatures() {
		rows = append(rows, []string{"feature", f.ID, f.Title, f.Description, f.ParentEpicID, "", ""})
	}
	for _, u := range snap.PresentUserStories() {
		rows = append(rows, []string{"user story", u.ID, u.Title, u.Action, u.ParentFeatureID, "", strconv.Itoa(u.Points)})
	}
	for _, t := range snap.PresentTasks() {
		rows = append(rows, []string{"task", t.ID, t.Title, t.Details, t.ParentUserStoryID, string(t.EffectiveStatus()), ""})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}

// RenderMarkdown produces the human-readable Markdown export: one epic
// block per epic with nested feature, story, and task checklist
// sections, in deterministic declaration order.
func RenderMarkdown(snap *backlog.Snapshot, title, description string) string {
	idx := snap.BuildIndex()
	var d doc

	if title == "" {
		title = snap.App.Name + " Backlog"
	}
	d.heading(1, title)
	if description != "" {
		d.heading(2, "Description")
		d.line("%s", description)
		d.blank()
	}

	for _, e := range snap.PresentEpics() {
		d.heading(2, "Epic: "+e.Title)
		if e.Description != "" {
			d.line("%s", e.Description)
			d.blank()
		}
		if e.Goal != "" {
			d.line("**Goal:** %s", e.Goal)
			d.blank()
		}
		for _, f := range idx.FeaturesByEpic[e.ID] {
			d.heading(3, "Feature: "+f.Title)
			if f.Description != "" {
				d.line("%s", f.Description)
				d.blank()
			}
			if texts := featureCriteria(f); len(texts) > 0 {
				d.checklist(texts)
			}
			for _, u := range idx.StoriesByFeature[f.ID] {
				d.heading(4, "User Story: "+u.Sentence())
				if texts := storyCriteria(u); len(texts) > 0 {
					d.checklist(texts)
				}
				for _, t := range idx.TasksByStory[u.ID] {
					d.line("- [ ] %s", taskChecklistLine(t))
				}
				if len(idx.TasksByStory[u.ID]) > 0 {
					d.blank()
				}
			}
		}
	}

	return d.String()
}

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// CSVResult is the outcome of a CSV import: one bucket per entity type
// plus preview statistics. When Valid is false the buckets are empty
// and Errors explains what failed.
type CSVResult struct {
	Valid       bool
	Errors      []string
	Epics       []backlog.Epic
	Features    []backlog.Feature
	UserStories []backlog.UserStory
	Tasks       []backlog.Task
	// Skipped counts data rows whose type matched no known bucket.
	// Unknown types are dropped silently, not reported as errors.
	Skipped int
}

// Total returns the number of imported entities across all buckets.
func (r *CSVResult) Total() int {
	return len(r.Epics) + len(r.Features) + len(r.UserStories) + len(r.Tasks)
}

// columnIndexes locates the recognized columns in a header row by
// case-insensitive substring match. type and title are required; id,
// desc, and parent are optional (-1 when absent).
type columnIndexes struct {
	typ, id, title, desc, parent int
}

func locateColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{typ: -1, id: -1, title: -1, desc: -1, parent: -1}
	for i, col := range header {
		lower := strings.ToLower(col)
		switch {
		case idx.typ == -1 && strings.Contains(lower, "type"):
			idx.typ = i
		case idx.id == -1 && strings.Contains(lower, "id") && !strings.Contains(lower, "parent"):
			idx.id = i
		case idx.title == -1 && strings.Contains(lower, "title"):
			idx.title = i
		case idx.desc == -1 && strings.Contains(lower, "desc"):
			idx.desc = i
		case idx.parent == -1 && strings.Contains(lower, "parent"):
			idx.parent = i
		}
	}
	if idx.typ == -1 || idx.title == -1 {
		return idx, fmt.Errorf("header must contain type and title columns")
	}
	return idx, nil
}

// ParseCSV tokenizes and dispatches a CSV import. Rows are parsed with
// RFC 4180 quoting (quoted fields may contain commas and newlines,
// internal quotes are doubled); blank lines are discarded. At least a
// header row plus one data row is required.
//
// The lower-cased Type value dispatches each row; surrounding
// whitespace is deliberately not trimmed before comparison, so a
// padded value such as " story " does not match.
func ParseCSV(text string) *CSVResult {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &CSVResult{Errors: []string{fmt.Sprintf("parse CSV: %v", err)}}
		}
		records = append(records, rec)
	}

	if len(records) < 2 {
		return &CSVResult{Errors: []string{"CSV must contain a header row and at least one data row"}}
	}

	idx, err := locateColumns(records[0])
	if err != nil {
		return &CSVResult{Errors: []string{err.Error()}}
	}

	res := &CSVResult{Valid: true}
	now := time.Now().UnixMilli()

	field := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	for row, rec := range records[1:] {
		id := field(rec, idx.id)
		if id == "" {
			id = placeholderID(now, row)
		}
		title := field(rec, idx.title)
		desc := field(rec, idx.desc)
		parent := field(rec, idx.parent)

		switch strings.ToLower(field(rec, idx.typ)) {
		case "epic":
			res.Epics = append(res.Epics, backlog.Epic{ID: id, Title: title, Description: desc})
		case "feature":
			res.Features = append(res.Features, backlog.Feature{ID: id, Title: title, Description: desc, ParentEpicID: parent})
		case "user story", "userstory", "story":
			// Stories have no generic description field; desc maps
			// onto the action.
			res.UserStories = append(res.UserStories, backlog.UserStory{ID: id, Title: title, Action: desc, ParentFeatureID: parent})
		case "task":
			res.Tasks = append(res.Tasks, backlog.Task{ID: id, Title: title, Details: desc, ParentUserStoryID: parent})
		default:
			res.Skipped++
		}
	}

	return res
}

// placeholderID generates the import id used when a row carries none.
func placeholderID(timestamp int64, row int) string {
	return "import-" + strconv.FormatInt(timestamp, 10) + "-" + strconv.Itoa(row)
}

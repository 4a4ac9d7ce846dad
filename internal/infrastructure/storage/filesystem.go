// Package storage persists the backlog workspace under .handoff/.
package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/handoff/internal/domain/audit"
	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
	"github.com/felixgeelhaar/handoff/internal/export"
)

const HandoffDir = ".handoff"
const BacklogFile = "backlog.yaml"
const ProfileFile = "export.yaml"
const EventsFile = "events.jsonl"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// ResolvePath ensures the path is within the .handoff directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, HandoffDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, HandoffDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .handoff directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, HandoffDir))
	return err == nil
}

// BacklogPath returns the absolute path of the backlog file. Watch mode
// observes this path.
func (r *FilesystemRepository) BacklogPath() string {
	return filepath.Join(r.root, HandoffDir, BacklogFile)
}

func (r *FilesystemRepository) SaveBacklog(snap *backlog.Snapshot) error {
	path, err := r.ResolvePath(BacklogFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal backlog: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadBacklog() (*backlog.Snapshot, error) {
	retryer := retry.New[*backlog.Snapshot](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*backlog.Snapshot, error) {
		path, err := r.ResolvePath(BacklogFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read backlog file: %w", err)
		}

		var snap backlog.Snapshot
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal backlog: %w", err)
		}
		ensureCollections(&snap)
		return &snap, nil
	})
}

// ensureCollections replaces nil maps so consumers can index freely.
func ensureCollections(snap *backlog.Snapshot) {
	if snap.Epics == nil {
		snap.Epics = map[string]*backlog.Epic{}
	}
	if snap.Features == nil {
		snap.Features = map[string]*backlog.Feature{}
	}
	if snap.UserStories == nil {
		snap.UserStories = map[string]*backlog.UserStory{}
	}
	if snap.Tasks == nil {
		snap.Tasks = map[string]*backlog.Task{}
	}
	if snap.Comments == nil {
		snap.Comments = map[string][]backlog.Comment{}
	}
}

func (r *FilesystemRepository) SaveProfile(profile *export.ProjectProfile) error {
	path, err := r.ResolvePath(ProfileFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal export profile: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadProfile reads the export profile. A missing file is not an
// error: the zero profile renders every project section as omitted.
func (r *FilesystemRepository) LoadProfile() (*export.ProjectProfile, error) {
	path, err := r.ResolvePath(ProfileFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &export.ProjectProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read export profile: %w", err)
	}

	var profile export.ProjectProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal export profile: %w", err)
	}
	return &profile, nil
}

func (r *FilesystemRepository) RecordEvent(event audit.Event) error {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) LoadEvents() ([]audit.Event, error) {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	var events []audit.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e audit.Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, e)
	}
	return events, scanner.Err()
}

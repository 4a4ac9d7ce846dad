package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/handoff/internal/domain/audit"
)

type AuditService struct {
	repo WorkspaceRepository
}

// Compile-time check that AuditService implements AuditLogger
var _ AuditLogger = (*AuditService)(nil)

func NewAuditService(repo WorkspaceRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]any) error {
	// Get the latest event to continue the hash chain
	events, _ := s.repo.LoadEvents()
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := audit.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	return s.repo.RecordEvent(event)
}

// GetTimeline returns the recorded events in order.
func (s *AuditService) GetTimeline() ([]audit.Event, error) {
	return s.repo.LoadEvents()
}

// VerifyIntegrity re-walks the hash chain and reports violations.
func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}

	var violations []string
	lastHash := ""
	for i, e := range events {
		if e.PrevHash != lastHash {
			violations = append(violations, fmt.Sprintf("event %d (%s): prev hash mismatch", i, e.ID))
		}
		if e.Hash != e.CalculateHash() {
			violations = append(violations, fmt.Sprintf("event %d (%s): content hash mismatch", i, e.ID))
		}
		lastHash = e.Hash
	}
	return violations, nil
}
